package fetch

import (
	"context"

	"github.com/looplab/fsm"

	"logview/internal/config/logger"
)

// Status is the lifecycle phase of a fetch
type Status string

// FSM states
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FSM events
const (
	eventLoad    = "load"
	eventSucceed = "succeed"
	eventFail    = "fail"
	eventReset   = "reset"
)

// State is an immutable snapshot of a lifecycle
type State[T any] struct {
	Status     Status
	Data       T
	Err        string
	Generation uint64
}

// Settled reports whether no request is in flight
func (s State[T]) Settled() bool {
	return s.Status != StatusLoading
}

// IsLoading reports whether a request is in flight
func (s State[T]) IsLoading() bool {
	return s.Status == StatusLoading
}

// Failed reports whether the last request ended with an error
func (s State[T]) Failed() bool {
	return s.Status == StatusError
}

// newMachine creates the state machine guarding lifecycle transitions
func newMachine(name string, log logger.Logger) *fsm.FSM {
	all := []string{string(StatusIdle), string(StatusLoading), string(StatusSuccess), string(StatusError)}

	return fsm.NewFSM(
		string(StatusIdle),
		fsm.Events{
			{Name: eventLoad, Src: []string{string(StatusIdle), string(StatusSuccess), string(StatusError)}, Dst: string(StatusLoading)},
			{Name: eventSucceed, Src: []string{string(StatusLoading)}, Dst: string(StatusSuccess)},
			{Name: eventFail, Src: []string{string(StatusLoading)}, Dst: string(StatusError)},
			{Name: eventReset, Src: all, Dst: string(StatusIdle)},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s: %s → %s (trigger: %s)", name, e.Src, e.Dst, e.Event)
			},
		},
	)
}
