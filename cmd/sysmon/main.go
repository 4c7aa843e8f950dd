// SysMon - a single-shot host resource snapshot.
//
// Prints disk, memory, per-core CPU and network identity tables, and
// optionally appends them to a log file.
//
// Usage:
//
//	sysmon                 # everything
//	sysmon --cpu --mem     # just CPU load and memory
//	sysmon --all --log     # everything, appended to logs/sysmon.log
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gravito-framework/sysmon-go/pkg/config"
	"github.com/gravito-framework/sysmon-go/pkg/monitor"
	"github.com/gravito-framework/sysmon-go/pkg/types"
)

var (
	version = "v1.2.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sysmon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stderr, fs) }

	var opts types.Options
	fs.BoolVar(&opts.Disk, "disk", false, "Display disk usage")
	fs.BoolVar(&opts.Mem, "mem", false, "Display memory usage")
	fs.BoolVar(&opts.CPU, "cpu", false, "Display CPU load")
	fs.BoolVar(&opts.Net, "net", false, "Display network info")
	fs.BoolVar(&opts.All, "all", false, "Display all system metrics")
	fs.BoolVar(&opts.Log, "log", false, "Append output to the log file")
	showVersion := fs.Bool("version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "SysMon %s\n", version)
		return 0
	}

	cfg := config.Load()

	// Diagnostics go to stderr so they never mix with the report
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration error", "error", err)
		return 1
	}

	m, err := monitor.New(cfg,
		monitor.WithLogger(logger),
		monitor.WithOutput(stdout),
		monitor.WithVersion(version),
	)
	if err != nil {
		logger.Error("Failed to create monitor", "error", err)
		return 1
	}
	defer m.Close()

	logger.Debug("Starting", "version", version, "commit", commit, "built", date, "log", opts.Log)

	if err := m.Run(context.Background(), opts); err != nil {
		logger.Error("Run aborted", "error", err)
		return 1
	}
	return 0
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: sysmon [options]

SysMon prints a one-off snapshot of disk usage, memory usage, per-core CPU
load and network identity. With no category flag, every category is shown.

Options:
`)
	fs.PrintDefaults()
	fmt.Fprint(w, `
Environment Variables:
  SYSMON_LOG_PATH           Log file for --log (default: logs/sysmon.log)
  SYSMON_PUBLIC_IP_URL      IP echo endpoint (default: https://api.ipify.org)
  SYSMON_PUBLIC_IP_TIMEOUT  Public IP lookup timeout in seconds (default: 5)
  SYSMON_REDIS_URL          Also push --log entries to this Redis
  SYSMON_REDIS_KEY          Redis list for mirrored entries (default: sysmon:log)
  SYSMON_DEBUG              Print diagnostics to stderr

Examples:
  # Memory and CPU only
  sysmon --mem --cpu

  # Hourly snapshot from cron
  0 * * * * cd /opt/sysmon && sysmon --all --log
`)
}
