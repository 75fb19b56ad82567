package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b", 0o600)
	writeFile(t, filepath.Join(root, "a", "c.txt"), "c", 0o600)
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref", 0o600)
	writeFile(t, filepath.Join(root, "build.log"), "log", 0o600)

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root) {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, rel)
	}

	assert.Equal(t, []string{
		filepath.Join(".git", "HEAD"),
		filepath.Join("a", "c.txt"),
		"b.txt",
		"build.log",
	}, got)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var errs int
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "absent")) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"1", "2", "3"} {
		writeFile(t, filepath.Join(root, name), name, 0o600)
	}

	count := 0
	for range fs.NewWalker().WalkFiles(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCopier_CopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "target", "release", "omega")
	writeFile(t, src, "#!/bin/sh\n", 0o600)

	dst := filepath.Join(dir, "prefix", "bin", "omega")
	c := fs.NewCopier(fs.NewWalker())
	require.NoError(t, c.CopyFile(src, dst, 0o755))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestCopier_CopyFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "new")
	dst := filepath.Join(dir, "out", "file")
	writeFile(t, src, "new", 0o600)
	writeFile(t, dst, "old content that is longer", 0o600)

	require.NoError(t, fs.NewCopier(fs.NewWalker()).CopyFile(src, dst, 0))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopier_CopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fs.NewCopier(fs.NewWalker()).CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"), 0)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "dst"))
}

func TestCopier_CopyTree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "X", 0o644)
	writeFile(t, filepath.Join(src, "core", "math.omega"), "math", 0o644)
	writeFile(t, filepath.Join(src, "tools", "run.sh"), "#!/bin/sh\n", 0o755)
	require.NoError(t, os.Symlink("a.txt", filepath.Join(src, "alias.txt")))

	dst := filepath.Join(t.TempDir(), "lib", "omega")
	written, err := fs.NewCopier(fs.NewWalker()).CopyTree(src, dst)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dst, "a.txt"),
		filepath.Join(dst, "alias.txt"),
		filepath.Join(dst, "core", "math.omega"),
		filepath.Join(dst, "tools", "run.sh"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))

	info, err := os.Stat(filepath.Join(dst, "tools", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	link, err := os.Readlink(filepath.Join(dst, "alias.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", link)
}

func TestCopier_CopyTree_KeepsHiddenDirectories(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "X", 0o600)
	writeFile(t, filepath.Join(src, "crypto", ".git", "HEAD"), "ref: refs/heads/main\n", 0o600)
	writeFile(t, filepath.Join(src, ".jj", "repo"), "store", 0o600)

	dst := filepath.Join(t.TempDir(), "lib", "omega")
	written, err := fs.NewCopier(fs.NewWalker()).CopyTree(src, dst)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dst, ".jj", "repo"),
		filepath.Join(dst, "a.txt"),
		filepath.Join(dst, "crypto", ".git", "HEAD"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dst, "crypto", ".git", "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/main\n", string(data))
}

func TestCopier_CopyTree_Empty(t *testing.T) {
	written, err := fs.NewCopier(fs.NewWalker()).CopyTree(t.TempDir(), filepath.Join(t.TempDir(), "dst"))
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestHasher_HashFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "same", 0o600)
	writeFile(t, b, "same", 0o600)
	writeFile(t, c, "different", 0o600)

	digests, err := fs.NewHasher().HashFiles([]string{a, b, c})
	require.NoError(t, err)

	require.Len(t, digests, 3)
	assert.Len(t, digests[a], 16)
	assert.Equal(t, digests[a], digests[b])
	assert.NotEqual(t, digests[a], digests[c])
}

func TestHasher_HashFiles_Missing(t *testing.T) {
	_, err := fs.NewHasher().HashFiles([]string{filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
}

func TestVerifier_VerifyOutputs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "build"), 0o750))

	v := fs.NewVerifier()

	ok, err := v.VerifyOutputs(root, []string{"build"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyOutputs(root, []string{"build", "out"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.VerifyOutputs(root, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}
