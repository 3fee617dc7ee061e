package logview

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"logview/internal/app/monitor"
	"logview/internal/app/ui/components"
)

// statsUpdateMsg carries a sample of the viewer's own resource usage
type statsUpdateMsg struct {
	CPU float64
	MEM float64
	Err error
}

// statsCmd samples the viewer process after the stats interval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}

	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		stats, err := mon.Self(ctx)
		if err != nil {
			return statsUpdateMsg{Err: err}
		}

		return statsUpdateMsg{CPU: stats.CPU, MEM: stats.MEM}
	})
}

// formatCPU formats a CPU percentage value
func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM formats a memory value in MB or GB
func formatMEM(mem float64) string {
	if mem < components.MBToGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/components.MBToGB)
}
