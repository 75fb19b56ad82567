package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/adapters/config"
	"go.trai.ch/omegaup/internal/core/domain"
)

func TestEncode_Default(t *testing.T) {
	data, err := config.Encode(domain.DefaultConfig())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, config.Header))
	assert.Contains(t, text, "[compiler]\n")
	assert.Contains(t, text, "optimization_level = 2\n")
	assert.Contains(t, text, "target_dir = \"build\"\n")
	assert.Contains(t, text, "[targets]\n")
	assert.Contains(t, text, "cosmos = false\n")
	assert.Contains(t, text, "[security]\n")
	assert.Contains(t, text, "strict_mode = true\n")
	assert.Contains(t, text, "[development]\n")
	assert.Contains(t, text, "verbose_output = false\n")
}

func TestEncodeDecode_Default(t *testing.T) {
	data, err := config.Encode(domain.DefaultConfig())
	require.NoError(t, err)

	doc, err := config.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *doc)
}

func TestDecode_Errors(t *testing.T) {
	_, err := config.Decode([]byte("[compiler\noptimization_level = "))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())

	doc, err := config.Decode([]byte("[compiler]\ntarget_dir = \"out\"\nfancy = 1\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	require.NotNil(t, doc)
	assert.Equal(t, "out", doc.TargetDir())
}

func TestStore_CreateIfAbsent_Writes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "omega", "omega.toml")
	s := config.NewStore()

	created, err := s.CreateIfAbsent(path, domain.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, created)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	doc, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *doc)
}

func TestStore_CreateIfAbsent_PreservesExistingBytes(t *testing.T) {
	contents := [][]byte{
		[]byte("[compiler]\noptimization_level = 0\n"),
		[]byte("not toml at all {{{"),
		{},
		{0x00, 0xff, 0x10},
	}

	for _, prior := range contents {
		path := filepath.Join(t.TempDir(), "omega.toml")
		require.NoError(t, os.WriteFile(path, prior, 0o600))

		s := config.NewStore()
		for range 2 {
			created, err := s.CreateIfAbsent(path, domain.DefaultConfig())
			require.NoError(t, err)
			assert.False(t, created)
		}

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, prior, got)
	}
}

func TestStore_CreateIfAbsent_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.toml")
	s := config.NewStore()

	created, err := s.CreateIfAbsent(path, domain.DefaultConfig())
	require.NoError(t, err)
	require.True(t, created)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	custom := domain.DefaultConfig()
	custom.Compiler.OptimizationLevel = 3
	created, err = s.CreateIfAbsent(path, custom)
	require.NoError(t, err)
	assert.False(t, created)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_Read_Missing(t *testing.T) {
	_, err := config.NewStore().Read(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
