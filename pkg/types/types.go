// Package types defines shared types for SysMon.
// Everything here is created fresh on each invocation and discarded after use.
package types

import "time"

// Category identifies one metric category
type Category string

const (
	CatDisk    Category = "disk"
	CatMemory  Category = "memory"
	CatCPU     Category = "cpu"
	CatNetwork Category = "network"
)

// Categories is the fixed reporting order
var Categories = []Category{CatDisk, CatMemory, CatCPU, CatNetwork}

// Title returns the section title used on the console and in the log
func (c Category) Title() string {
	switch c {
	case CatDisk:
		return "Disk Usage"
	case CatMemory:
		return "Memory Usage"
	case CatCPU:
		return "CPU Load"
	case CatNetwork:
		return "Network Info"
	default:
		return string(c)
	}
}

// MetricRow is one pre-formatted row of display strings
type MetricRow []string

// MetricTable is a fixed header plus zero or more rows
type MetricTable struct {
	Headers []string
	Rows    []MetricRow
}

// NewMetricTable creates an empty table with the given headers
func NewMetricTable(headers ...string) *MetricTable {
	return &MetricTable{Headers: headers}
}

// Append adds a row to the table
func (t *MetricTable) Append(cells ...string) {
	t.Rows = append(t.Rows, MetricRow(cells))
}

// Scope says how much of a probe a failure affects
type Scope string

const (
	ScopeEntry Scope = "entry"       // one row skipped, the rest still reported
	ScopeProbe Scope = "whole-probe" // the probe produced nothing
)

// Failure is a human-readable failure reported by a probe
type Failure struct {
	Reason string
	Scope  Scope
}

// ProbeResult is the outcome of running one probe.
// A result may carry both a table and entry-scoped failures.
type ProbeResult struct {
	Title    string
	Table    *MetricTable
	Failures []Failure
}

// Ok creates a successful result
func Ok(title string, table *MetricTable) ProbeResult {
	return ProbeResult{Title: title, Table: table}
}

// Failed creates a whole-probe failure
func Failed(title, reason string) ProbeResult {
	return ProbeResult{
		Title:    title,
		Failures: []Failure{{Reason: reason, Scope: ScopeProbe}},
	}
}

// SkipEntry records an entry-scoped failure on the result
func (r *ProbeResult) SkipEntry(reason string) {
	r.Failures = append(r.Failures, Failure{Reason: reason, Scope: ScopeEntry})
}

// Aborted reports whether the whole probe failed
func (r ProbeResult) Aborted() bool {
	for _, f := range r.Failures {
		if f.Scope == ScopeProbe {
			return true
		}
	}
	return false
}

// HasRows reports whether there is a table worth rendering
func (r ProbeResult) HasRows() bool {
	return r.Table != nil && len(r.Table.Rows) > 0
}

// LogEntry is one persisted section of output
type LogEntry struct {
	Time  time.Time
	Title string
	Body  string
}

// Options holds the resolved command-line switches
type Options struct {
	Disk bool
	Mem  bool
	CPU  bool
	Net  bool
	All  bool
	Log  bool
}

// AnyCategory reports whether any category flag (including all) was set
func (o Options) AnyCategory() bool {
	return o.Disk || o.Mem || o.CPU || o.Net || o.All
}

// Wants reports whether the given category was requested explicitly
func (o Options) Wants(c Category) bool {
	switch c {
	case CatDisk:
		return o.Disk
	case CatMemory:
		return o.Mem
	case CatCPU:
		return o.CPU
	case CatNetwork:
		return o.Net
	default:
		return false
	}
}
