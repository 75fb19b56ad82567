package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/omegaup/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/adapters/receipt"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/omegaup/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			shell.ResolverNodeID,
			fs.CopierNodeID,
			config.NodeID,
			receipt.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ToolResolver](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.Copier](ctx)
			if err != nil {
				return nil, err
			}

			configs, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			receipts, err := graft.Dep[ports.ReceiptStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, resolver, copier, configs, receipts, hasher, verifier, telemetry, log), nil
		},
	})
}
