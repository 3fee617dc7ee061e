package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logview/internal/app/criteria"
	"logview/internal/app/fetch"
	"logview/internal/app/model"
	"logview/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventCriteriaChanged  MessageType = "criteria_changed"
	EventLogsUpdated      MessageType = "logs_updated"
	EventLoggersUpdated   MessageType = "loggers_updated"
	EventDrilldownUpdated MessageType = "drilldown_updated"
	EventLevelUpdated     MessageType = "level_updated"
	EventSelectionChanged MessageType = "selection_changed"
	EventPollingChanged   MessageType = "polling_changed"
	EventRefreshRequested MessageType = "refresh_requested"
	EventConfigReloaded   MessageType = "config_reloaded"
	EventWatchStarted     MessageType = "watch_started"
	EventWatchStopped     MessageType = "watch_stopped"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// CriteriaChanged carries the new filter snapshot
type CriteriaChanged struct {
	Criteria criteria.Criteria
}

// LogsUpdated carries the logs lifecycle snapshot
type LogsUpdated struct {
	State fetch.State[[]model.LogEntry]
}

// LoggersUpdated carries the loggers lifecycle snapshot
type LoggersUpdated struct {
	State fetch.State[[]model.Logger]
}

// DrilldownUpdated carries the single-entry lifecycle snapshot
type DrilldownUpdated struct {
	State fetch.State[model.LogEntry]
}

// LevelUpdated carries the level mutation snapshot of one logger
type LevelUpdated struct {
	LoggerID int
	State    fetch.State[string]
}

// SelectionChanged indicates which log entry is drilled into
type SelectionChanged struct {
	ID       int64
	Selected bool
}

// PollingChanged indicates polling was switched on or off
type PollingChanged struct {
	Enabled bool
}

// ConfigReloaded indicates the config file changed on disk
type ConfigReloaded struct {
	Path string
}

// Payload contains a simple name identifier for events
type Payload struct {
	Name string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	bufferSize  int
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus whose subscriptions buffer bufferSize messages
func New(bufferSize int, log logger.Logger) Bus {
	return &bus{
		bufferSize:  bufferSize,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.bufferSize)

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers; non-critical messages are dropped for full subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case CriteriaChanged:
		return fmt.Sprintf("{query: %s}", d.Criteria.Encode())
	case LogsUpdated:
		return fmt.Sprintf("{status: %s, entries: %d, generation: %d}", d.State.Status, len(d.State.Data), d.State.Generation)
	case LoggersUpdated:
		return fmt.Sprintf("{status: %s, loggers: %d, generation: %d}", d.State.Status, len(d.State.Data), d.State.Generation)
	case DrilldownUpdated:
		return fmt.Sprintf("{status: %s, id: %d}", d.State.Status, d.State.Data.ID)
	case LevelUpdated:
		return fmt.Sprintf("{logger: %d, status: %s}", d.LoggerID, d.State.Status)
	case SelectionChanged:
		return fmt.Sprintf("{id: %d, selected: %t}", d.ID, d.Selected)
	case PollingChanged:
		return fmt.Sprintf("{enabled: %t}", d.Enabled)
	case ConfigReloaded:
		return fmt.Sprintf("{path: %s}", d.Path)
	case Payload:
		return fmt.Sprintf("{name: %s}", d.Name)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
