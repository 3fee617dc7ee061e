package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"logview/internal/app/criteria"
	"logview/internal/config/logger"
)

func Test_Start_PerformsInitialRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := NewMockRefetcher(ctrl)
	loggers := NewMockRefetcher(ctrl)

	logs.EXPECT().Refetch().Return(uint64(1)).Times(1)
	loggers.EXPECT().Refetch().Return(uint64(1)).Times(1)

	o := New(criteria.NewStore(criteria.DefaultLimit), logger.NewNopLogger(), logs, loggers)
	o.Start()
	o.Start()
}

func Test_Start_SubscribesToSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockSource(ctrl)
	dependent := NewMockRefetcher(ctrl)

	unsubscribed := false

	source.EXPECT().Criteria().Return(criteria.Defaults())
	source.EXPECT().Subscribe(gomock.Any()).Return(func() { unsubscribed = true })
	dependent.EXPECT().Refetch().Return(uint64(1))

	o := New(source, logger.NewNopLogger(), dependent)
	o.Start()
	o.Stop()

	assert.True(t, unsubscribed)
}

func Test_OnChange(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *criteria.Store)
		expected int
	}{
		{
			name:     "distinct snapshot refreshes once",
			mutate:   func(s *criteria.Store) { s.SetSearch("db") },
			expected: 1,
		},
		{
			name:     "identical snapshot does not refresh",
			mutate:   func(s *criteria.Store) { s.SetSearch("") },
			expected: 0,
		},
		{
			name: "batch of two mutations refreshes once",
			mutate: func(s *criteria.Store) {
				s.Batch(func(m criteria.Mutator) {
					m.SetSearch("db")
					m.Exclude(3)
				})
			},
			expected: 1,
		},
		{
			name: "mutation reverted by the next is refreshed twice",
			mutate: func(s *criteria.Store) {
				s.SetSearch("db")
				s.SetSearch("")
			},
			expected: 2,
		},
		{
			name: "repeated identical mutation refreshes once",
			mutate: func(s *criteria.Store) {
				s.Exclude(3)
				s.Exclude(3)
			},
			expected: 1,
		},
		{
			name:     "clear from defaults does not refresh",
			mutate:   func(s *criteria.Store) { s.Clear() },
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logs := NewMockRefetcher(ctrl)
			loggers := NewMockRefetcher(ctrl)

			logs.EXPECT().Refetch().Return(uint64(0)).Times(1 + tt.expected)
			loggers.EXPECT().Refetch().Return(uint64(0)).Times(1 + tt.expected)

			store := criteria.NewStore(criteria.DefaultLimit)
			o := New(store, logger.NewNopLogger(), logs, loggers)
			o.Start()
			defer o.Stop()

			tt.mutate(store)
		})
	}
}

func Test_Refresh_AlwaysRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dependent := NewMockRefetcher(ctrl)
	dependent.EXPECT().Refetch().Return(uint64(0)).Times(3)

	o := New(criteria.NewStore(criteria.DefaultLimit), logger.NewNopLogger(), dependent)
	o.Start()
	o.Refresh()
	o.Refresh()
}

func Test_Stop_IgnoresFurtherChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dependent := NewMockRefetcher(ctrl)
	dependent.EXPECT().Refetch().Return(uint64(0)).Times(1)

	store := criteria.NewStore(criteria.DefaultLimit)
	o := New(store, logger.NewNopLogger(), dependent)
	o.Start()
	o.Stop()

	store.SetSearch("db")
}

func Test_RefetchFunc(t *testing.T) {
	called := 0

	var r Refetcher = RefetchFunc(func() uint64 {
		called++
		return 7
	})

	assert.Equal(t, uint64(7), r.Refetch())
	assert.Equal(t, 1, called)
}
