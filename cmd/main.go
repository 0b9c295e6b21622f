package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/recordops/internal/app"
	"github.com/okian/recordops/internal/config"
	"github.com/okian/recordops/internal/domain/dataset"
	"github.com/okian/recordops/internal/report"
	"github.com/okian/recordops/pkg/logger"
	"github.com/okian/recordops/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one report and returns the process exit code. The report goes
// to stdout; logs, errors and the optional metrics dump go to stderr.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	if err := logger.Init(stderr); err != nil {
		_, _ = io.WriteString(stderr, "failed to initialize logging: "+err.Error()+"\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		_, _ = io.WriteString(stderr, "failed to load config: "+err.Error()+"\n")
		return 1
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	ds := dataset.Default()
	if cfg.DatasetFile != "" {
		ds, err = dataset.LoadFile(ctx, cfg.DatasetFile)
		if err != nil {
			log.Error(ctx, "dataset load failed", logger.String("path", cfg.DatasetFile), logger.Error(err))
			return 1
		}
		log.Info(ctx, "dataset loaded", logger.String("path", cfg.DatasetFile))
	}

	m := metrics.Default()
	svc := app.New(
		app.WithLogger(log.Named("pipeline")),
		app.WithMetrics(m),
		app.WithPassMark(cfg.PassMark),
	)

	rep, err := svc.Run(ctx, ds)
	if err != nil {
		log.Error(ctx, "pipeline run failed", logger.Error(err))
		return 1
	}

	if err := report.New(stdout).Write(rep); err != nil {
		log.Error(ctx, "report output failed", logger.Error(err))
		return 1
	}

	if cfg.MetricsDump {
		if err := m.WriteText(stderr); err != nil {
			log.Warn(ctx, "metrics dump failed", logger.Error(err))
		}
	}
	return 0
}
