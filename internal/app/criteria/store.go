package criteria

import (
	"sync"
)

// Mutator edits a criteria draft; the Store and Batch both expose it
type Mutator interface {
	SetMinTime(v string)
	SetMaxTime(v string)
	SetOffset(n int)
	SetLimit(n int)
	SetSearch(v string)
	Exclude(id int)
	Include(id int)
	SetLoggerIncluded(id int, included bool)
	ReplaceExcluded(ids []int)
	ToggleAllLoggers(allKnownIDs []int)
	NextPage()
	PrevPage()
	Clear()
}

// Observer receives every new criteria snapshot
type Observer func(Criteria)

// Store owns the current criteria and notifies observers on every change.
// Observers run synchronously on the mutating goroutine and must not call mutators.
type Store struct {
	writeMu   sync.Mutex
	mu        sync.RWMutex
	criteria  Criteria
	observers map[int]Observer
	nextID    int
}

// NewStore creates a store holding the cleared criteria with the given initial page size
func NewStore(limit int) *Store {
	c := Defaults()
	if limit > 0 {
		c.Limit = limit
	}

	return &Store{
		criteria:  c,
		observers: make(map[int]Observer),
	}
}

// Criteria returns the current snapshot
func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.criteria.Clone()
}

// Subscribe registers an observer and returns a func that removes it
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

// Batch applies several mutations and notifies observers once with the outcome
func (s *Store) Batch(fn func(m Mutator)) {
	s.update(func(c *Criteria) {
		fn(&draft{c: c})
	})
}

// SetMinTime replaces the lower time bound
func (s *Store) SetMinTime(v string) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetMinTime(v) })
}

// SetMaxTime replaces the upper time bound
func (s *Store) SetMaxTime(v string) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetMaxTime(v) })
}

// SetOffset replaces the offset; negative values are kept as-is
func (s *Store) SetOffset(n int) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetOffset(n) })
}

// SetLimit replaces the page size without validation
func (s *Store) SetLimit(n int) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetLimit(n) })
}

// SetSearch replaces the free-text filter
func (s *Store) SetSearch(v string) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetSearch(v) })
}

// Exclude adds a logger to the exclusion set
func (s *Store) Exclude(id int) {
	s.update(func(c *Criteria) { (&draft{c: c}).Exclude(id) })
}

// Include removes a logger from the exclusion set
func (s *Store) Include(id int) {
	s.update(func(c *Criteria) { (&draft{c: c}).Include(id) })
}

// SetLoggerIncluded maps a per-row checkbox onto Include/Exclude
func (s *Store) SetLoggerIncluded(id int, included bool) {
	s.update(func(c *Criteria) { (&draft{c: c}).SetLoggerIncluded(id, included) })
}

// ReplaceExcluded swaps the exclusion set wholesale
func (s *Store) ReplaceExcluded(ids []int) {
	s.update(func(c *Criteria) { (&draft{c: c}).ReplaceExcluded(ids) })
}

// ToggleAllLoggers applies the master checkbox against the known logger ids
func (s *Store) ToggleAllLoggers(allKnownIDs []int) {
	s.update(func(c *Criteria) { (&draft{c: c}).ToggleAllLoggers(allKnownIDs) })
}

// NextPage moves the offset forward by one page
func (s *Store) NextPage() {
	s.update(func(c *Criteria) { (&draft{c: c}).NextPage() })
}

// PrevPage moves the offset back by one page without clamping
func (s *Store) PrevPage() {
	s.update(func(c *Criteria) { (&draft{c: c}).PrevPage() })
}

// Clear resets every field to its default
func (s *Store) Clear() {
	s.update(func(c *Criteria) { (&draft{c: c}).Clear() })
}

// update replaces the criteria with an edited copy and notifies observers while holding the write lock
func (s *Store) update(edit func(c *Criteria)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := s.criteria.Clone()
	edit(&next)
	s.criteria = next

	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next.Clone())
	}
}

// draft implements Mutator over a private copy of the criteria
type draft struct {
	c *Criteria
}

func (d *draft) SetMinTime(v string) { d.c.MinTime = v }
func (d *draft) SetMaxTime(v string) { d.c.MaxTime = v }
func (d *draft) SetOffset(n int) { d.c.Offset = n }
func (d *draft) SetLimit(n int) { d.c.Limit = n }
func (d *draft) SetSearch(v string) { d.c.Search = v }
func (d *draft) Exclude(id int) { d.c.ExcludeLoggers.Add(id) }
func (d *draft) Include(id int) { d.c.ExcludeLoggers.Remove(id) }

func (d *draft) SetLoggerIncluded(id int, included bool) {
	if included {
		d.Include(id)
		return
	}

	d.Exclude(id)
}

func (d *draft) ReplaceExcluded(ids []int) {
	d.c.ExcludeLoggers.ReplaceAll(ids)
}

func (d *draft) ToggleAllLoggers(allKnownIDs []int) {
	d.c.ExcludeLoggers.ToggleAll(allKnownIDs)
}

func (d *draft) NextPage() { d.c.Offset = NextOffset(*d.c) }
func (d *draft) PrevPage() { d.c.Offset = PrevOffset(*d.c) }

func (d *draft) Clear() {
	*d.c = Defaults()
}
