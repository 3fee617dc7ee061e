package logview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logview/internal/app/criteria"
	"logview/internal/app/errors"
)

func Test_ParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		field    field
		value    string
		expected int
		err      string
	}{
		{name: "offset zero", field: fieldOffset, value: "0", expected: 0},
		{name: "offset positive", field: fieldOffset, value: "200", expected: 200},
		{name: "offset negative", field: fieldOffset, value: "-1", err: "offset must be at least 0"},
		{name: "limit positive", field: fieldLimit, value: "25", expected: 25},
		{name: "limit zero", field: fieldLimit, value: "0", err: "limit must be greater than 0"},
		{name: "not a number", field: fieldLimit, value: "ten", err: "limit must be a whole number"},
		{name: "empty", field: fieldOffset, value: "", err: "offset must be a whole number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parsePagination(tt.field, tt.value)
			if tt.err != "" {
				assert.ErrorIs(t, err, errors.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func Test_Field_Apply(t *testing.T) {
	tests := []struct {
		name     string
		field    field
		value    string
		expected func(c criteria.Criteria) bool
	}{
		{name: "search trimmed", field: fieldSearch, value: "  db  ", expected: func(c criteria.Criteria) bool { return c.Search == "db" }},
		{name: "min time", field: fieldMinTime, value: "2024-01-01", expected: func(c criteria.Criteria) bool { return c.MinTime == "2024-01-01" }},
		{name: "max time", field: fieldMaxTime, value: "2024-02-01", expected: func(c criteria.Criteria) bool { return c.MaxTime == "2024-02-01" }},
		{name: "offset", field: fieldOffset, value: "300", expected: func(c criteria.Criteria) bool { return c.Offset == 300 }},
		{name: "limit", field: fieldLimit, value: "25", expected: func(c criteria.Criteria) bool { return c.Limit == 25 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := criteria.NewStore(100)

			err := tt.field.apply(store, tt.value)

			assert.NoError(t, err)
			assert.True(t, tt.expected(store.Criteria()))
		})
	}
}

func Test_Field_Apply_InvalidLeavesStoreUntouched(t *testing.T) {
	store := criteria.NewStore(100)
	notified := 0
	store.Subscribe(func(criteria.Criteria) { notified++ })

	err := fieldLimit.apply(store, "-5")

	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Equal(t, 100, store.Criteria().Limit)
	assert.Equal(t, 0, notified)
}

func Test_Field_Current(t *testing.T) {
	c := criteria.Defaults()
	c.Search = "db"
	c.Offset = 200

	assert.Equal(t, "db", fieldSearch.current(c))
	assert.Equal(t, "200", fieldOffset.current(c))
	assert.Equal(t, "100", fieldLimit.current(c))
	assert.Equal(t, "", fieldNone.current(c))
}
