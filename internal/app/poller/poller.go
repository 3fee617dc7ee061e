package poller

import (
	"sync"
	"time"

	"logview/internal/config/logger"
)

// Target is a refetchable lifecycle that reports when it settles
type Target interface {
	Refetch() uint64
	Settled() bool
	OnSettle(fn func()) func()
}

// Poller re-runs a target a fixed interval after each settle while enabled
type Poller interface {
	SetEnabled(enabled bool)
	Enabled() bool
	Stop()
}

// poller implements the Poller interface
type poller struct {
	target      Target
	interval    time.Duration
	log         logger.Logger
	unsubscribe func()

	mu      sync.Mutex
	enabled bool
	stopped bool
	timer   *time.Timer
	seq     uint64
}

// New creates a disabled poller watching target
func New(target Target, interval time.Duration, log logger.Logger) Poller {
	p := &poller{
		target:   target,
		interval: interval,
		log:      log,
	}

	p.unsubscribe = target.OnSettle(p.onSettle)

	return p
}

// SetEnabled turns polling on or off; enabling while settled arms the timer at once
func (p *poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || p.enabled == enabled {
		return
	}

	p.enabled = enabled

	if !enabled {
		p.disarm()
		p.log.Debug().Msg("Polling disabled")

		return
	}

	p.log.Debug().Msgf("Polling enabled every %s", p.interval)

	if p.target.Settled() {
		p.arm()
	}
}

// Enabled reports whether polling is on
func (p *poller) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.enabled
}

// Stop cancels any pending refetch and detaches from the target
func (p *poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}

	p.stopped = true
	p.enabled = false
	p.disarm()
	p.unsubscribe()
}

func (p *poller) onSettle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || !p.enabled {
		return
	}

	p.arm()
}

// arm schedules the next refetch, replacing a pending one; callers hold mu
func (p *poller) arm() {
	p.disarm()

	seq := p.seq
	p.timer = time.AfterFunc(p.interval, func() { p.fire(seq) })
}

// disarm cancels the pending refetch; callers hold mu
func (p *poller) disarm() {
	p.seq++

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *poller) fire(seq uint64) {
	p.mu.Lock()

	if p.stopped || !p.enabled || seq != p.seq {
		p.mu.Unlock()
		return
	}

	p.timer = nil
	p.mu.Unlock()

	// a fetch already in flight re-arms the poller when it settles
	if !p.target.Settled() {
		return
	}

	p.target.Refetch()
}
