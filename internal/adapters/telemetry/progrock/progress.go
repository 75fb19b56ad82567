package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/omegaup/internal/core/ports"
)

// Progress is a progrock.Writer that reports each finished vertex through
// the logger. Internal vertices are not reported.
type Progress struct {
	mu     sync.Mutex
	logger ports.Logger
	done   map[string]struct{}
}

// NewProgress creates a Progress reporting to log.
func NewProgress(log ports.Logger) *Progress {
	return &Progress{
		logger: log,
		done:   make(map[string]struct{}),
	}
}

// WriteStatus processes the vertex updates of one status update.
func (p *Progress) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		p.report(v)
	}
	return nil
}

// Close implements progrock.Writer.
func (p *Progress) Close() error {
	return nil
}

func (p *Progress) report(v *progrock.Vertex) {
	if v.Internal || v.Completed == nil {
		return
	}
	if _, seen := p.done[v.Id]; seen {
		return
	}
	p.done[v.Id] = struct{}{}

	switch {
	case v.Error != nil:
		p.logger.Warn(v.Name + " failed")
	case v.Cached:
		p.logger.Info(v.Name + " skipped")
	default:
		p.logger.Info(v.Name + " done in " + elapsed(v).String())
	}
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.Started == nil {
		return 0
	}
	return v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
}
