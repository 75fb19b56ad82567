package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/omegaup/internal/core/ports"
	"go.trai.ch/omegaup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"

	recorder "go.trai.ch/omegaup/internal/adapters/telemetry/progrock"
)

func TestRecorder_Record(t *testing.T) {
	rec := recorder.NewRecorder(progrock.NewTape())

	ctx, vertex := rec.Record(context.Background(), string(domain.PhaseBuild))
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("Compiling omega v1.2.0\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning: unused\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "artifact ready")
	vertex.Complete(nil)

	require.NoError(t, rec.Close())
}

func TestRecorder_Phases(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Info(gomock.Regex(`^prerequisites done in `)),
		log.EXPECT().Info(gomock.Regex(`^build done in `)),
		log.EXPECT().Info(gomock.Regex(`^layout done in `)),
		log.EXPECT().Warn("provision failed"),
		log.EXPECT().Info("verify skipped"),
	)

	rec := recorder.New(log)
	ctx := context.Background()

	for _, phase := range domain.Phases {
		_, v := rec.Record(ctx, string(phase))
		switch phase {
		case domain.PhaseVerify:
			v.Cached()
			v.Complete(nil)
		case domain.PhaseProvision:
			v.Complete(errors.New("permission denied"))
		default:
			v.Complete(nil)
		}
	}

	_, internal := rec.Record(ctx, "receipt", ports.WithInternal())
	internal.Complete(nil)

	assert.NoError(t, rec.Close())
}
