package probes

import (
	"context"
	"fmt"

	"github.com/gravito-framework/sysmon-go/pkg/types"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryProbe reports one system-wide memory snapshot
type MemoryProbe struct {
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// NewMemoryProbe creates a memory probe backed by gopsutil
func NewMemoryProbe() *MemoryProbe {
	return &MemoryProbe{virtualMemory: mem.VirtualMemoryWithContext}
}

// Collect returns a single Total/Used/Free row
func (p *MemoryProbe) Collect(ctx context.Context) types.ProbeResult {
	title := types.CatMemory.Title()

	v, err := p.virtualMemory(ctx)
	if err != nil {
		return types.Failed(title, fmt.Sprintf("Error retrieving memory info: %v", err))
	}

	table := types.NewMetricTable("Total", "Used", "Free")
	table.Append(
		fmt.Sprintf("%.1f GB", toGiB(v.Total)),
		fmt.Sprintf("%.1f GB", toGiB(v.Used)),
		fmt.Sprintf("%.1f GB", toGiB(v.Available)),
	)
	return types.Ok(title, table)
}

var _ Probe = (*MemoryProbe)(nil)
