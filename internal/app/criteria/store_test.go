package criteria

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewStore(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "configured limit", limit: 25, expected: 25},
		{name: "zero limit falls back", limit: 0, expected: DefaultLimit},
		{name: "negative limit falls back", limit: -3, expected: DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.limit)
			assert.Equal(t, tt.expected, s.Criteria().Limit)
		})
	}
}

func Test_Store_Mutators(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Store)
		check  func(t *testing.T, c Criteria)
	}{
		{
			name:   "min time",
			mutate: func(s *Store) { s.SetMinTime("2024-01-01") },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, "2024-01-01", c.MinTime) },
		},
		{
			name:   "max time",
			mutate: func(s *Store) { s.SetMaxTime("2024-02-01") },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, "2024-02-01", c.MaxTime) },
		},
		{
			name:   "negative offset is stored unchanged",
			mutate: func(s *Store) { s.SetOffset(-5) },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, -5, c.Offset) },
		},
		{
			name:   "limit is stored unvalidated",
			mutate: func(s *Store) { s.SetLimit(0) },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, 0, c.Limit) },
		},
		{
			name:   "search",
			mutate: func(s *Store) { s.SetSearch("db") },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, "db", c.Search) },
		},
		{
			name: "exclude and include",
			mutate: func(s *Store) {
				s.Exclude(1)
				s.Exclude(2)
				s.Include(1)
			},
			check: func(t *testing.T, c Criteria) { assert.Equal(t, []int{2}, c.ExcludeLoggers.IDs()) },
		},
		{
			name: "checkbox maps to include and exclude",
			mutate: func(s *Store) {
				s.SetLoggerIncluded(4, false)
				s.SetLoggerIncluded(5, false)
				s.SetLoggerIncluded(4, true)
			},
			check: func(t *testing.T, c Criteria) { assert.Equal(t, []int{5}, c.ExcludeLoggers.IDs()) },
		},
		{
			name:   "replace excluded",
			mutate: func(s *Store) { s.ReplaceExcluded([]int{8, 7}) },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, []int{7, 8}, c.ExcludeLoggers.IDs()) },
		},
		{
			name:   "toggle all with nothing excluded",
			mutate: func(s *Store) { s.ToggleAllLoggers([]int{1, 2}) },
			check:  func(t *testing.T, c Criteria) { assert.Equal(t, []int{1, 2}, c.ExcludeLoggers.IDs()) },
		},
		{
			name: "toggle all with something excluded",
			mutate: func(s *Store) {
				s.Exclude(1)
				s.ToggleAllLoggers([]int{1, 2})
			},
			check: func(t *testing.T, c Criteria) { assert.True(t, c.ExcludeLoggers.IsAllIncluded()) },
		},
		{
			name: "next then prev pages",
			mutate: func(s *Store) {
				s.NextPage()
				s.PrevPage()
				s.PrevPage()
			},
			check: func(t *testing.T, c Criteria) { assert.Equal(t, -100, c.Offset) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(DefaultLimit)
			tt.mutate(s)
			tt.check(t, s.Criteria())
		})
	}
}

func Test_Store_Clear(t *testing.T) {
	s := NewStore(25)
	s.SetMinTime("a")
	s.SetMaxTime("b")
	s.SetOffset(300)
	s.SetSearch("db")
	s.Exclude(3)

	s.Clear()

	c := s.Criteria()
	assert.Equal(t, Defaults(), c)
	assert.Equal(t, 100, c.Limit)
}

func Test_Store_SnapshotIsIsolated(t *testing.T) {
	s := NewStore(DefaultLimit)
	s.Exclude(1)

	snapshot := s.Criteria()
	snapshot.ExcludeLoggers.Add(2)

	assert.Equal(t, []int{1}, s.Criteria().ExcludeLoggers.IDs())
}

func Test_Store_Subscribe(t *testing.T) {
	s := NewStore(DefaultLimit)

	var received []Criteria

	cancel := s.Subscribe(func(c Criteria) {
		received = append(received, c)
	})

	s.SetSearch("db")
	s.SetSearch("db")

	require.Len(t, received, 2)
	assert.Equal(t, "db", received[0].Search)

	cancel()
	s.SetSearch("cache")

	assert.Len(t, received, 2)
}

func Test_Store_Batch(t *testing.T) {
	s := NewStore(DefaultLimit)
	s.SetOffset(200)

	var received []Criteria

	s.Subscribe(func(c Criteria) {
		received = append(received, c)
	})

	s.Batch(func(m Mutator) {
		m.SetSearch("db")
		m.Exclude(3)
		m.SetOffset(0)
	})

	require.Len(t, received, 1)
	assert.Equal(t, "db", received[0].Search)
	assert.Equal(t, []int{3}, received[0].ExcludeLoggers.IDs())
	assert.Equal(t, 0, received[0].Offset)
}

func Test_Store_ObserverMayReadCriteria(t *testing.T) {
	s := NewStore(DefaultLimit)

	var seen string

	s.Subscribe(func(Criteria) {
		seen = s.Criteria().Search
	})

	s.SetSearch("db")

	assert.Equal(t, "db", seen)
}

func Test_Store_ConcurrentMutations(t *testing.T) {
	s := NewStore(DefaultLimit)

	var (
		mu    sync.Mutex
		count int
	)

	s.Subscribe(func(Criteria) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()
			s.Exclude(id)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 20, s.Criteria().ExcludeLoggers.Len())
	assert.Equal(t, 20, count)
}
