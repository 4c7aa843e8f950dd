package probes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/gravito-framework/sysmon-go/pkg/types"
	"github.com/shirou/gopsutil/v3/disk"
)

// DiskProbe reports usage for every physical mount point
type DiskProbe struct {
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewDiskProbe creates a disk probe backed by gopsutil
func NewDiskProbe() *DiskProbe {
	return &DiskProbe{
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
	}
}

// Collect queries each partition; an unreadable mount point is skipped
// and reported as an entry failure.
func (p *DiskProbe) Collect(ctx context.Context) types.ProbeResult {
	title := types.CatDisk.Title()

	parts, err := p.partitions(ctx, false)
	if err != nil {
		return types.Failed(title, fmt.Sprintf("Error retrieving disk info: %v", err))
	}

	table := types.NewMetricTable("Filesystem", "Size", "Used", "Avail", "Use%", "Mounted on")
	result := types.Ok(title, table)

	for _, part := range parts {
		u, err := p.usage(ctx, part.Mountpoint)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				result.SkipEntry("Permission denied accessing " + part.Mountpoint)
			} else {
				result.SkipEntry(fmt.Sprintf("Error accessing %s: %v", part.Mountpoint, err))
			}
			continue
		}

		table.Append(
			part.Device,
			fmt.Sprintf("%.0fG", toGiB(u.Total)),
			fmt.Sprintf("%.0fG", toGiB(u.Used)),
			fmt.Sprintf("%.0fG", toGiB(u.Free)),
			fmt.Sprintf("%.0f%%", u.UsedPercent),
			part.Mountpoint,
		)
	}

	if len(table.Rows) == 0 {
		result.Table = nil
	}
	return result
}

var _ Probe = (*DiskProbe)(nil)
