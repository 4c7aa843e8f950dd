package probes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gravito-framework/sysmon-go/pkg/types"
	"github.com/shirou/gopsutil/v3/cpu"
)

// SampleWindow is how long the CPU probe measures utilization.
// Shorter windows give noisy readings.
const SampleWindow = 1 * time.Second

// CPUProbe reports per-core utilization over SampleWindow
type CPUProbe struct {
	percent func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	window  time.Duration
}

// NewCPUProbe creates a CPU probe backed by gopsutil
func NewCPUProbe() *CPUProbe {
	return &CPUProbe{
		percent: cpu.PercentWithContext,
		window:  SampleWindow,
	}
}

// Collect blocks for the sample window, then returns one row per logical core
func (p *CPUProbe) Collect(ctx context.Context) types.ProbeResult {
	title := types.CatCPU.Title()

	cores, err := p.percent(ctx, p.window, true)
	if err == nil && len(cores) == 0 {
		err = errors.New("no per-core samples returned")
	}
	if err != nil {
		return types.Failed(title, fmt.Sprintf("Error retrieving CPU load: %v", err))
	}

	table := types.NewMetricTable("Core", "Usage")
	for i, pct := range cores {
		table.Append(fmt.Sprintf("Core %d", i), fmt.Sprintf("%.1f%%", pct))
	}
	return types.Ok(title, table)
}

var _ Probe = (*CPUProbe)(nil)
