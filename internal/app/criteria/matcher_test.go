package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logview/internal/app/errors"
	"logview/internal/app/model"
)

func Test_MatchLoggers(t *testing.T) {
	loggers := []model.Logger{
		{ID: 1, Name: "app.db"},
		{ID: 2, Name: "app.db.pool"},
		{ID: 3, Name: "app.http"},
		{ID: 4, Name: "vendor.cache"},
	}

	tests := []struct {
		name     string
		patterns []string
		expected []int
	}{
		{name: "no patterns", patterns: nil, expected: []int{}},
		{name: "exact name", patterns: []string{"app.http"}, expected: []int{3}},
		{name: "single segment wildcard", patterns: []string{"app.*"}, expected: []int{1, 3}},
		{name: "super wildcard", patterns: []string{"app.**"}, expected: []int{1, 2, 3}},
		{name: "several patterns", patterns: []string{"vendor.*", "app.db"}, expected: []int{1, 4}},
		{name: "no match", patterns: []string{"other.*"}, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := MatchLoggers(tt.patterns, loggers)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func Test_MatchLoggers_InvalidPattern(t *testing.T) {
	_, err := MatchLoggers([]string{"app.[db"}, []model.Logger{{ID: 1, Name: "app.db"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPattern)
}
