package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	"logview/internal/app/errors"
	"logview/internal/config/logger"
)

// Request performs one fetch; it should honour ctx cancellation
type Request[T any] func(ctx context.Context) (T, error)

// Lifecycle tracks one logical fetch through idle, loading, success and error.
// Every trigger starts a new generation; a response is applied only while its generation is current.
type Lifecycle[T any] struct {
	name    string
	log     logger.Logger
	machine *fsm.FSM

	mu         sync.Mutex
	state      State[T]
	generation uint64
	request    Request[T]
	inFlight   map[uint64]context.CancelFunc
	settledCh  chan struct{}
	closed     bool
	baseCtx    context.Context
	baseCancel context.CancelFunc

	observers   map[int]func(State[T])
	settleHooks map[int]func()
	nextID      int

	pending  []notification[T]
	draining bool
}

type notification[T any] struct {
	state   State[T]
	settled bool
}

// New creates an idle lifecycle
func New[T any](name string, log logger.Logger) *Lifecycle[T] {
	ctx, cancel := context.WithCancel(context.Background())

	return &Lifecycle[T]{
		name:        name,
		log:         log,
		machine:     newMachine(name, log),
		state:       State[T]{Status: StatusIdle},
		baseCtx:     ctx,
		baseCancel:  cancel,
		inFlight:    make(map[uint64]context.CancelFunc),
		observers:   make(map[int]func(State[T])),
		settleHooks: make(map[int]func()),
	}
}

// Name returns the lifecycle name used in logs
func (l *Lifecycle[T]) Name() string {
	return l.name
}

// State returns the current snapshot
func (l *Lifecycle[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Settled reports whether no request is in flight
func (l *Lifecycle[T]) Settled() bool {
	return l.State().Settled()
}

// Trigger starts a new generation running req and returns the generation number.
// Data from the previous success stays visible while loading. A superseded
// request keeps running to completion and its result is discarded.
func (l *Lifecycle[T]) Trigger(req Request[T]) uint64 {
	l.mu.Lock()

	if l.closed {
		l.mu.Unlock()
		return 0
	}

	l.request = req
	gen, ctx := l.begin()
	l.enqueue(notification[T]{state: l.state})
	l.mu.Unlock()

	go l.run(ctx, gen, req)

	l.drain()

	return gen
}

// Refetch re-runs the last request; it does nothing before the first Trigger
func (l *Lifecycle[T]) Refetch() uint64 {
	l.mu.Lock()
	req := l.request
	l.mu.Unlock()

	if req == nil {
		return 0
	}

	return l.Trigger(req)
}

// Reset returns to idle, drops data and discards any in-flight response
func (l *Lifecycle[T]) Reset() {
	l.mu.Lock()

	if l.closed {
		l.mu.Unlock()
		return
	}

	l.generation++
	l.stopInFlight()
	l.wakeWaiters()
	l.request = nil
	l.transition(eventReset)
	l.state = State[T]{Status: StatusIdle, Generation: l.generation}
	l.enqueue(notification[T]{state: l.state})
	l.mu.Unlock()

	l.drain()
}

// Await blocks until no request is in flight or ctx is done
func (l *Lifecycle[T]) Await(ctx context.Context) (State[T], error) {
	for {
		l.mu.Lock()

		if l.closed {
			state := l.state
			l.mu.Unlock()

			return state, errors.ErrLifecycleClosed
		}

		if l.state.Settled() {
			state := l.state
			l.mu.Unlock()

			return state, nil
		}

		ch := l.settledCh
		l.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return l.State(), ctx.Err()
		}
	}
}

// Subscribe registers fn for every state change and returns a func that removes it.
// Notifications are delivered in transition order; fn may trigger lifecycles.
func (l *Lifecycle[T]) Subscribe(fn func(State[T])) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.observers[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.observers, id)
	}
}

// OnSettle registers fn to run each time the current generation settles and returns a func that removes it
func (l *Lifecycle[T]) OnSettle(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.settleHooks[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.settleHooks, id)
	}
}

// Close cancels every outstanding request and stops all further updates
func (l *Lifecycle[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	l.closed = true
	l.stopInFlight()
	l.wakeWaiters()
	l.baseCancel()
	l.observers = make(map[int]func(State[T]))
	l.settleHooks = make(map[int]func())
}

// begin bumps the generation and moves to loading; callers hold mu
func (l *Lifecycle[T]) begin() (uint64, context.Context) {
	l.generation++

	ctx, cancel := context.WithCancel(l.baseCtx)
	l.inFlight[l.generation] = cancel

	if l.state.Status != StatusLoading {
		l.transition(eventLoad)
		l.settledCh = make(chan struct{})
	}

	l.state.Status = StatusLoading
	l.state.Err = ""
	l.state.Generation = l.generation

	return l.generation, ctx
}

// stopInFlight cancels every outstanding request; callers hold mu
func (l *Lifecycle[T]) stopInFlight() {
	for gen, cancel := range l.inFlight {
		cancel()
		delete(l.inFlight, gen)
	}
}

// release frees the context of a finished request
func (l *Lifecycle[T]) release(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cancel, ok := l.inFlight[gen]; ok {
		cancel()
		delete(l.inFlight, gen)
	}
}

// wakeWaiters releases Await callers; callers hold mu
func (l *Lifecycle[T]) wakeWaiters() {
	if l.settledCh != nil {
		close(l.settledCh)
		l.settledCh = nil
	}
}

func (l *Lifecycle[T]) run(ctx context.Context, gen uint64, req Request[T]) {
	data, err := l.invoke(ctx, req)
	l.release(gen)
	l.settle(gen, data, err)
}

func (l *Lifecycle[T]) invoke(ctx context.Context, req Request[T]) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrRequestPanicked, r)
		}
	}()

	return req(ctx)
}

func (l *Lifecycle[T]) settle(gen uint64, data T, err error) {
	l.mu.Lock()

	if l.closed || gen != l.generation {
		current := l.generation
		l.mu.Unlock()
		l.log.Debug().Msgf("Discarding stale %s response (generation %d, current %d)", l.name, gen, current)

		return
	}

	if err != nil {
		l.transition(eventFail)

		var zero T

		l.state = State[T]{Status: StatusError, Data: zero, Err: err.Error(), Generation: gen}
		l.log.Warn().Err(err).Msgf("%s request failed", l.name)
	} else {
		l.transition(eventSucceed)
		l.state = State[T]{Status: StatusSuccess, Data: data, Generation: gen}
	}

	l.wakeWaiters()
	l.enqueue(notification[T]{state: l.state, settled: true})
	l.mu.Unlock()

	l.drain()
}

// transition fires an FSM event; callers hold mu
func (l *Lifecycle[T]) transition(event string) {
	if err := l.machine.Event(context.Background(), event); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			l.log.Error().Err(err).Msgf("Invalid %s transition '%s' from '%s'", l.name, event, l.machine.Current())
		}
	}
}

// enqueue queues a notification; callers hold mu
func (l *Lifecycle[T]) enqueue(n notification[T]) {
	l.pending = append(l.pending, n)
}

// drain delivers queued notifications in order; only one goroutine drains at a time
func (l *Lifecycle[T]) drain() {
	l.mu.Lock()

	if l.draining {
		l.mu.Unlock()
		return
	}

	l.draining = true

	for len(l.pending) > 0 {
		n := l.pending[0]
		l.pending = l.pending[1:]

		observers := make([]func(State[T]), 0, len(l.observers))
		for _, fn := range l.observers {
			observers = append(observers, fn)
		}

		var hooks []func()
		if n.settled {
			hooks = make([]func(), 0, len(l.settleHooks))
			for _, fn := range l.settleHooks {
				hooks = append(hooks, fn)
			}
		}

		l.mu.Unlock()

		for _, fn := range observers {
			fn(n.state)
		}

		for _, fn := range hooks {
			fn()
		}

		l.mu.Lock()
	}

	l.draining = false
	l.mu.Unlock()
}
