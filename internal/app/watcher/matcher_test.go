package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMatcher_InvalidPattern(t *testing.T) {
	m, err := NewMatcher([]string{"[invalid"})

	assert.Error(t, err)
	assert.Nil(t, m)
}

func Test_Matcher_Match(t *testing.T) {
	m, err := NewMatcher([]string{"logview.yaml", ".env"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "config file", path: "/etc/app/logview.yaml", expected: true},
		{name: "env file", path: "/etc/app/.env", expected: true},
		{name: "relative path", path: "logview.yaml", expected: true},
		{name: "other file", path: "/etc/app/other.yaml", expected: false},
		{name: "vim swap file", path: "/etc/app/.logview.yaml.swp", expected: false},
		{name: "backup file", path: "/etc/app/logview.yaml~", expected: false},
		{name: "emacs lock file", path: "/etc/app/.#logview.yaml", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Match(tt.path))
		})
	}
}
