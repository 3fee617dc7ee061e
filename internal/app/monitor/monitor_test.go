package monitor

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	m := NewMonitor()

	assert.NotNil(t, m)
}

func Test_Self(t *testing.T) {
	m := NewMonitor()

	stats, err := m.Self(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.MEM, 0.0)
	assert.Positive(t, stats.Goroutines)
}

func Test_GetStats(t *testing.T) {
	tests := []struct {
		name    string
		pid     int
		zero    bool
		wantErr bool
	}{
		{name: "zero pid", pid: 0, zero: true},
		{name: "negative pid", pid: -1, zero: true},
		{name: "pid beyond int32", pid: 2147483648, zero: true},
		{name: "current process", pid: os.Getpid()},
		{name: "missing process", pid: 999999999, wantErr: true},
	}

	m := NewMonitor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(context.Background(), tt.pid)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			if tt.zero {
				assert.Equal(t, Stats{}, stats)
				return
			}

			assert.GreaterOrEqual(t, stats.MEM, 0.0)
		})
	}
}
