package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/omegaup/internal/app"
	_ "go.trai.ch/omegaup/internal/wiring"
)

// TestGraftGraph resolves the full dependency graph the CLI starts from.
// Static validation with graft.AssertDepsValid is not used: it derives node
// names from the package of the type passed to Dep, and every adapter here
// is requested through the shared ports package.
func TestGraftGraph(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NoError(t, components.App.Close())
}
