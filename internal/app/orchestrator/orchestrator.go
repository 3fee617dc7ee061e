//go:generate mockgen -source=orchestrator.go -destination=orchestrator_mock.go -package=orchestrator

package orchestrator

import (
	"sync"

	"logview/internal/app/criteria"
	"logview/internal/config/logger"
)

// Refetcher is anything that can re-run its last request
type Refetcher interface {
	Refetch() uint64
}

// RefetchFunc adapts a func to Refetcher
type RefetchFunc func() uint64

// Refetch calls f
func (f RefetchFunc) Refetch() uint64 {
	return f()
}

// Source is the criteria store the orchestrator watches
type Source interface {
	Criteria() criteria.Criteria
	Subscribe(fn criteria.Observer) func()
}

// Orchestrator refetches every dependent once per distinct criteria snapshot
type Orchestrator interface {
	Start()
	Refresh()
	Stop()
}

// orchestrator implements the Orchestrator interface
type orchestrator struct {
	source     Source
	dependents []Refetcher
	log        logger.Logger

	mu          sync.Mutex
	last        criteria.Criteria
	started     bool
	unsubscribe func()
}

// New creates an orchestrator over source refreshing dependents
func New(source Source, log logger.Logger, dependents ...Refetcher) Orchestrator {
	return &orchestrator{
		source:     source,
		dependents: dependents,
		log:        log,
	}
}

// Start subscribes to the source and performs the initial refresh
func (o *orchestrator) Start() {
	o.mu.Lock()

	if o.started {
		o.mu.Unlock()
		return
	}

	o.started = true
	o.last = o.source.Criteria()
	o.unsubscribe = o.source.Subscribe(o.onChange)
	o.mu.Unlock()

	o.log.Debug().Msg("Initial refresh")
	o.refetchAll()
}

// Refresh refetches every dependent regardless of whether the criteria changed
func (o *orchestrator) Refresh() {
	o.mu.Lock()
	o.last = o.source.Criteria()
	o.mu.Unlock()

	o.log.Debug().Msg("Manual refresh")
	o.refetchAll()
}

// Stop unsubscribes from the source
func (o *orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}

	o.started = false
}

func (o *orchestrator) onChange(c criteria.Criteria) {
	o.mu.Lock()

	if !o.started || c.Equal(o.last) {
		o.mu.Unlock()
		return
	}

	o.last = c
	o.mu.Unlock()

	o.log.Debug().Msgf("Criteria changed (offset=%d, limit=%d, search='%s', excluded=%d)", c.Offset, c.Limit, c.Search, c.ExcludeLoggers.Len())
	o.refetchAll()
}

func (o *orchestrator) refetchAll() {
	for _, d := range o.dependents {
		d.Refetch()
	}
}
