//go:generate mockgen -source=session.go -destination=session_mock.go -package=session

package session

import (
	"context"
	"sync"

	"logview/internal/app/api"
	"logview/internal/app/bus"
	"logview/internal/app/criteria"
	"logview/internal/app/fetch"
	"logview/internal/app/model"
	"logview/internal/app/orchestrator"
	"logview/internal/app/poller"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Session owns the filter store, the fetch lifecycles and the refresh machinery of one viewer
type Session interface {
	Start()
	Close()
	Await(ctx context.Context) error

	Filters() *criteria.Store
	Logs() fetch.State[[]model.LogEntry]
	Loggers() fetch.State[[]model.Logger]
	Drilldown() fetch.State[model.LogEntry]
	LevelState(id int) fetch.State[string]

	Selected() (int64, bool)
	Select(id int64)
	ToggleSelection(id int64)
	ClearSelection()

	SetLoggerLevel(id int, level model.Level, onDone func())
	ChangeLoggerLevel(id int, level model.Level)
	ExcludePatterns(patterns []string) error

	SetPolling(enabled bool)
	Polling() bool
	Refresh()

	OnChange(fn func(bus.Message)) func()
}

// session implements the Session interface
type session struct {
	client   api.Client
	bus      bus.Bus
	log      logger.Logger
	fetchLog logger.Logger

	store        *criteria.Store
	logs         *fetch.Lifecycle[[]model.LogEntry]
	loggers      *fetch.Lifecycle[[]model.Logger]
	drilldown    *fetch.Lifecycle[model.LogEntry]
	orchestrator orchestrator.Orchestrator
	poller       poller.Poller
	pollOnStart  bool

	mu          sync.Mutex
	levels      map[int]*fetch.Lifecycle[string]
	selected    int64
	hasSelected bool
	started     bool
	closed      bool
	cancels     []func()
}

// New creates a session for the configured server; nothing is fetched until Start
func New(cfg *config.Config, client api.Client, b bus.Bus, log logger.Logger) Session {
	fetchLog := log.WithComponent("FETCH")

	s := &session{
		client:      client,
		bus:         b,
		log:         log.WithComponent("SESSION"),
		fetchLog:    fetchLog,
		store:       criteria.NewStore(cfg.Query.Limit),
		logs:        fetch.New[[]model.LogEntry]("logs", fetchLog),
		loggers:     fetch.New[[]model.Logger]("loggers", fetchLog),
		drilldown:   fetch.New[model.LogEntry]("drilldown", fetchLog),
		pollOnStart: cfg.Polling.Enabled,
		levels:      make(map[int]*fetch.Lifecycle[string]),
	}

	s.orchestrator = orchestrator.New(s.store, log.WithComponent("ORCHESTRATOR"),
		orchestrator.RefetchFunc(func() uint64 { return s.logs.Trigger(s.fetchLogs) }),
		orchestrator.RefetchFunc(func() uint64 { return s.loggers.Trigger(s.fetchLoggers) }),
	)
	s.poller = poller.New(s.logs, cfg.Polling.Interval, log.WithComponent("POLLER"))

	return s
}

// Start publishes state changes and performs the initial fetch
func (s *session) Start() {
	s.mu.Lock()

	if s.started || s.closed {
		s.mu.Unlock()
		return
	}

	s.started = true
	s.cancels = append(s.cancels,
		s.store.Subscribe(func(c criteria.Criteria) {
			s.bus.Publish(bus.Message{Type: bus.EventCriteriaChanged, Data: bus.CriteriaChanged{Criteria: c}})
		}),
		s.logs.Subscribe(func(st fetch.State[[]model.LogEntry]) {
			s.bus.Publish(bus.Message{Type: bus.EventLogsUpdated, Data: bus.LogsUpdated{State: st}, Critical: st.Settled()})
		}),
		s.loggers.Subscribe(func(st fetch.State[[]model.Logger]) {
			s.bus.Publish(bus.Message{Type: bus.EventLoggersUpdated, Data: bus.LoggersUpdated{State: st}, Critical: st.Settled()})
		}),
		s.drilldown.Subscribe(func(st fetch.State[model.LogEntry]) {
			s.bus.Publish(bus.Message{Type: bus.EventDrilldownUpdated, Data: bus.DrilldownUpdated{State: st}, Critical: st.Settled()})
		}),
	)
	s.mu.Unlock()

	s.log.Info().Msgf("Session started (limit=%d, polling=%t)", s.store.Criteria().Limit, s.pollOnStart)

	s.orchestrator.Start()

	if s.pollOnStart {
		s.SetPolling(true)
	}
}

// Close stops polling, detaches observers and discards outstanding responses
func (s *session) Close() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	cancels := s.cancels
	s.cancels = nil

	levels := make([]*fetch.Lifecycle[string], 0, len(s.levels))
	for _, lc := range s.levels {
		levels = append(levels, lc)
	}
	s.mu.Unlock()

	s.poller.Stop()
	s.orchestrator.Stop()

	for _, cancel := range cancels {
		cancel()
	}

	s.logs.Close()
	s.loggers.Close()
	s.drilldown.Close()

	for _, lc := range levels {
		lc.Close()
	}

	s.log.Info().Msg("Session closed")
}

// Await blocks until logs, loggers and the drilldown have settled
func (s *session) Await(ctx context.Context) error {
	if _, err := s.logs.Await(ctx); err != nil {
		return err
	}

	if _, err := s.loggers.Await(ctx); err != nil {
		return err
	}

	_, err := s.drilldown.Await(ctx)

	return err
}

// Filters returns the criteria store
func (s *session) Filters() *criteria.Store {
	return s.store
}

// Logs returns the logs lifecycle snapshot
func (s *session) Logs() fetch.State[[]model.LogEntry] {
	return s.logs.State()
}

// Loggers returns the loggers lifecycle snapshot with loggers ordered by name
func (s *session) Loggers() fetch.State[[]model.Logger] {
	return s.loggers.State()
}

// Drilldown returns the selected entry lifecycle snapshot
func (s *session) Drilldown() fetch.State[model.LogEntry] {
	return s.drilldown.State()
}

// LevelState returns the level mutation snapshot of one logger
func (s *session) LevelState(id int) fetch.State[string] {
	s.mu.Lock()
	lc, ok := s.levels[id]
	s.mu.Unlock()

	if !ok {
		return fetch.State[string]{Status: fetch.StatusIdle}
	}

	return lc.State()
}

// Selected returns the drilled-into entry id
func (s *session) Selected() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected, s.hasSelected
}

// Select drills into an entry; id 0 means nothing selected
func (s *session) Select(id int64) {
	if id == 0 {
		s.ClearSelection()
		return
	}

	s.mu.Lock()
	s.selected = id
	s.hasSelected = true
	s.mu.Unlock()

	s.bus.Publish(bus.Message{Type: bus.EventSelectionChanged, Data: bus.SelectionChanged{ID: id, Selected: true}})

	s.drilldown.Trigger(func(ctx context.Context) (model.LogEntry, error) {
		return s.client.Log(ctx, id)
	})
}

// ToggleSelection selects id, or clears the selection when id is already selected
func (s *session) ToggleSelection(id int64) {
	if current, ok := s.Selected(); ok && current == id {
		s.ClearSelection()
		return
	}

	s.Select(id)
}

// ClearSelection drops the drilldown without fetching
func (s *session) ClearSelection() {
	s.mu.Lock()
	s.selected = 0
	s.hasSelected = false
	s.mu.Unlock()

	s.drilldown.Reset()

	s.bus.Publish(bus.Message{Type: bus.EventSelectionChanged, Data: bus.SelectionChanged{}})
}

// SetLoggerLevel changes a logger's level; onDone runs once the request settles, whatever the outcome
func (s *session) SetLoggerLevel(id int, level model.Level, onDone func()) {
	lc, ok := s.levelLifecycle(id)
	if !ok {
		return
	}

	if onDone != nil {
		var (
			once   sync.Once
			cancel func()
		)

		cancel = lc.OnSettle(func() {
			once.Do(func() {
				cancel()
				onDone()
			})
		})
	}

	s.log.Info().Msgf("Setting level of logger %d to %s", id, level)

	lc.Trigger(func(ctx context.Context) (string, error) {
		return s.client.SetLevel(ctx, id, level)
	})
}

// ChangeLoggerLevel changes a logger's level and refreshes the view afterwards
func (s *session) ChangeLoggerLevel(id int, level model.Level) {
	s.SetLoggerLevel(id, level, s.Refresh)
}

// ExcludePatterns replaces the exclusion set with the known loggers matching any glob pattern
func (s *session) ExcludePatterns(patterns []string) error {
	ids, err := criteria.MatchLoggers(patterns, s.loggers.State().Data)
	if err != nil {
		return err
	}

	s.log.Debug().Msgf("Patterns %v exclude %d loggers", patterns, len(ids))
	s.store.ReplaceExcluded(ids)

	return nil
}

// SetPolling turns periodic log refetching on or off
func (s *session) SetPolling(enabled bool) {
	s.poller.SetEnabled(enabled)
	s.bus.Publish(bus.Message{Type: bus.EventPollingChanged, Data: bus.PollingChanged{Enabled: enabled}, Critical: true})
}

// Polling reports whether periodic refetching is on
func (s *session) Polling() bool {
	return s.poller.Enabled()
}

// Refresh refetches logs and loggers unconditionally
func (s *session) Refresh() {
	s.bus.Publish(bus.Message{Type: bus.EventRefreshRequested})
	s.orchestrator.Refresh()
}

// OnChange calls fn for every session event until the returned func is called
func (s *session) OnChange(fn func(bus.Message)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.bus.Subscribe(ctx)

	go func() {
		for msg := range ch {
			fn(msg)
		}
	}()

	return cancel
}

func (s *session) levelLifecycle(id int) (*fetch.Lifecycle[string], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false
	}

	if lc, ok := s.levels[id]; ok {
		return lc, true
	}

	lc := fetch.New[string]("level", s.fetchLog)
	lc.Subscribe(func(st fetch.State[string]) {
		s.bus.Publish(bus.Message{Type: bus.EventLevelUpdated, Data: bus.LevelUpdated{LoggerID: id, State: st}, Critical: st.Settled()})
	})
	s.levels[id] = lc

	return lc, true
}

func (s *session) fetchLogs(ctx context.Context) ([]model.LogEntry, error) {
	return s.client.Logs(ctx, s.store.Criteria())
}

func (s *session) fetchLoggers(ctx context.Context) ([]model.Logger, error) {
	loggers, err := s.client.Loggers(ctx)
	if err != nil {
		return nil, err
	}

	return model.SortLoggers(loggers), nil
}
