//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor

package monitor

import (
	"context"
	"math"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains resource usage of the viewer process
type Stats struct {
	CPU        float64
	MEM        float64 // in MB
	Goroutines int
}

// Monitor samples process resource usage for the banner
type Monitor interface {
	Self(ctx context.Context) (Stats, error)
	GetStats(ctx context.Context, pid int) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

// Self samples the current process and adds the goroutine count
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	stats, err := m.GetStats(ctx, m.pid)
	if err != nil {
		return Stats{}, err
	}

	stats.Goroutines = runtime.NumGoroutine()

	return stats, nil
}

// GetStats samples CPU and resident memory of pid; invalid pids yield zero stats
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}
