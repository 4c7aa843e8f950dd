// Package monitor drives the probes and reports their results.
package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gravito-framework/sysmon-go/internal/redis"
	"github.com/gravito-framework/sysmon-go/pkg/config"
	"github.com/gravito-framework/sysmon-go/pkg/probes"
	"github.com/gravito-framework/sysmon-go/pkg/sink"
	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// Monitor runs the selected probes one after another and reports each
type Monitor struct {
	config *config.Config
	logger *slog.Logger

	probes map[types.Category]probes.Probe
	sink   sink.Sink
	redis  *redis.Client

	out     io.Writer
	palette palette
	version string
	now     func() time.Time
}

// Option is a functional option for configuring the Monitor
type Option func(*Monitor)

// WithLogger sets a custom diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// WithOutput sets where the report is printed
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) {
		m.out = w
	}
}

// WithProbe replaces the probe for one category
func WithProbe(c types.Category, p probes.Probe) Option {
	return func(m *Monitor) {
		m.probes[c] = p
	}
}

// WithSink replaces the default log sink
func WithSink(s sink.Sink) Option {
	return func(m *Monitor) {
		m.sink = s
	}
}

// WithVersion sets the version shown in the banner
func WithVersion(v string) Option {
	return func(m *Monitor) {
		m.version = v
	}
}

// WithClock sets the time source for log entries
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// New creates a Monitor with gopsutil-backed probes.
// The log sink is only built once a run asks for logging.
func New(cfg *config.Config, opts ...Option) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		config: cfg,
		logger: slog.Default(),
		probes: map[types.Category]probes.Probe{
			types.CatDisk:    probes.NewDiskProbe(),
			types.CatMemory:  probes.NewMemoryProbe(),
			types.CatCPU:     probes.NewCPUProbe(),
			types.CatNetwork: probes.NewNetworkProbe(cfg.PublicIPURL, cfg.PublicIPTimeout),
		},
		out:     os.Stdout,
		version: "dev",
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.palette = newPalette(m.out)
	return m, nil
}

// defaultSink builds the file sink, plus the Redis mirror when configured.
// A bad mirror URL only costs the mirror.
func (m *Monitor) defaultSink() sink.Sink {
	file := sink.NewFileSink(m.config.LogPath)
	if m.config.RedisURL == "" {
		return file
	}

	client, err := redis.NewClientLazy(m.config.RedisURL)
	if err != nil {
		m.logger.Warn("Log mirror disabled", "error", err)
		return file
	}
	m.redis = client

	return &sink.Tee{
		Primary: file,
		Mirrors: []sink.Sink{sink.NewRedisSink(client.Client, m.config.RedisKey)},
		Logger:  m.logger,
	}
}

// Close releases the Redis mirror connection, if any
func (m *Monitor) Close() error {
	if m.redis == nil {
		return nil
	}
	return m.redis.Close()
}

// Run prints the banner and reports every selected category in order.
// Probe failures are reported and skipped; a log sink failure aborts the run.
func (m *Monitor) Run(ctx context.Context, opts types.Options) error {
	if opts.Log && m.sink == nil {
		m.sink = m.defaultSink()
	}

	m.printBanner()

	for _, c := range Select(opts) {
		p, ok := m.probes[c]
		if !ok {
			m.logger.Warn("No probe registered", "category", c)
			continue
		}

		start := time.Now()
		result := p.Collect(ctx)
		m.logger.Debug("Probe finished",
			"category", c,
			"duration", time.Since(start),
			"failures", len(result.Failures),
		)

		if err := m.report(ctx, result, opts.Log); err != nil {
			return err
		}
	}
	return nil
}

func (m *Monitor) printBanner() {
	title := center(fmt.Sprintf("System Monitor - %s", m.version), bannerWidth, '=')
	fmt.Fprintf(m.out, "\n%s\n\n", m.palette.banner.Render(title))
}

// report prints one probe result and forwards it to the sink when logging
func (m *Monitor) report(ctx context.Context, result types.ProbeResult, logging bool) error {
	for _, f := range result.Failures {
		fmt.Fprintln(m.out, m.palette.err.Render(f.Reason))
		if logging {
			if err := m.log(ctx, result.Title+" Error", f.Reason); err != nil {
				return err
			}
		}
	}

	if !result.HasRows() {
		fmt.Fprintln(m.out)
		return nil
	}

	rendered := renderTable(result.Table)
	fmt.Fprintln(m.out, m.palette.title.Render(result.Title+":"))
	fmt.Fprintln(m.out, rendered)
	fmt.Fprintln(m.out)

	if logging {
		return m.log(ctx, result.Title, rendered)
	}
	return nil
}

func (m *Monitor) log(ctx context.Context, title, body string) error {
	err := m.sink.Write(ctx, types.LogEntry{Time: m.now(), Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("failed to log %q: %w", title, err)
	}
	return nil
}
