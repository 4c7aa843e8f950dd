// Package probes provides the metric collectors behind each report section.
//
// Probes never return Go errors. Every failure is folded into the returned
// types.ProbeResult so the caller can report it and move on.
package probes

import (
	"context"

	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// Probe collects one metric category
type Probe interface {
	Collect(ctx context.Context) types.ProbeResult
}

// gib is the divisor for binary gigabytes
const gib = 1024 * 1024 * 1024

func toGiB(bytes uint64) float64 {
	return float64(bytes) / gib
}
