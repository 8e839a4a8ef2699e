package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	gfcontext "github.com/vnykmshr/goexec/pkg/common/context"
	"github.com/vnykmshr/goexec/pkg/metrics"
	"github.com/vnykmshr/goexec/pkg/scheduling/executor"
)

type runConfig struct {
	Name        string        `mapstructure:"name"`
	Workers     int           `mapstructure:"workers"`
	IdlePoll    time.Duration `mapstructure:"idle-poll"`
	Interval    time.Duration `mapstructure:"interval"`
	Cron        string        `mapstructure:"cron"`
	Duration    time.Duration `mapstructure:"duration"`
	MetricsAddr string        `mapstructure:"metrics-addr"`
	LogLevel    string        `mapstructure:"log-level"`
	LogFormat   string        `mapstructure:"log-format"`
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo workload until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg runConfig
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("decoding config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("name", "goexec", "executor name used in logs and metrics")
	flags.Int("workers", 4, "number of worker goroutines")
	flags.Duration("idle-poll", 250*time.Millisecond, "how often idle workers re-check the queue")
	flags.Duration("interval", time.Second, "fixed delay between heartbeat runs")
	flags.String("cron", "*/5 * * * * *", "cron expression for the report task (with seconds)")
	flags.Duration("duration", 0, "stop after this long; 0 runs until SIGINT or SIGTERM")
	flags.String("metrics-addr", ":9090", "address for the /metrics endpoint; empty disables it")

	return cmd
}

func run(ctx context.Context, cfg runConfig) error {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ex, err := executor.NewWithConfig(executor.Config{
		Name:             cfg.Name,
		WorkerCount:      cfg.Workers,
		IdlePollInterval: cfg.IdlePoll,
		Logger:           logger,
		Metrics:          metrics.NewRegistry(reg),
		PanicHandler: func(taskID string, recovered interface{}, stack []byte) {
			logger.Error("task panicked", zap.String("task", taskID), zap.Any("panic", recovered), zap.ByteString("stack", stack))
		},
	})
	if err != nil {
		return err
	}
	if err := ex.Start(); err != nil {
		return err
	}

	srv := serveMetrics(cfg.MetricsAddr, reg, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	if err := submitDemo(ex, cfg, logger); err != nil {
		_ = ex.Shutdown()
		return err
	}

	<-ctx.Done()
	reason := "signal"
	if gfcontext.IsTimedOut(ctx) {
		reason = "duration elapsed"
	}
	logger.Info("stopping", zap.String("reason", reason))

	if err := ex.Shutdown(); err != nil {
		return err
	}
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	logger.Info("done",
		zap.Int64("scheduled", ex.TotalScheduled()),
		zap.Int64("executed", ex.TotalExecuted()))
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return srv
}

// submitDemo schedules one task of each kind.
func submitDemo(ex executor.Executor, cfg runConfig, logger *zap.Logger) error {
	if _, err := ex.Execute(executor.RunnableFunc(func(ctx context.Context) error {
		logger.Info("hello from the executor")
		return nil
	})); err != nil {
		return err
	}

	if _, err := ex.Schedule(executor.RunnableFunc(func(ctx context.Context) error {
		logger.Info("delayed task ran", zap.Duration("delay", 2*time.Second))
		return nil
	}), 2*time.Second); err != nil {
		return err
	}

	var beats int64
	if _, err := ex.ScheduleWithFixedDelay(executor.RunnableFunc(func(ctx context.Context) error {
		logger.Debug("heartbeat", zap.Int64("beat", atomic.AddInt64(&beats, 1)))
		return nil
	}), cfg.Interval); err != nil {
		return err
	}

	if _, err := ex.ScheduleCron(executor.RunnableFunc(func(ctx context.Context) error {
		logger.Info("report",
			zap.Int("queued", ex.QueueLen()),
			zap.Int("active", ex.ActiveWorkers()),
			zap.Int64("executed", ex.TotalExecuted()))
		return nil
	}), cfg.Cron); err != nil {
		return err
	}

	var attempts int32
	_, err := ex.Execute(executor.BackoffRunnable{
		Runnable: executor.RunnableFunc(func(ctx context.Context) error {
			if n := atomic.AddInt32(&attempts, 1); n < 3 {
				return fmt.Errorf("flaky attempt %d", n)
			}
			logger.Info("flaky task succeeded", zap.Int32("attempts", atomic.LoadInt32(&attempts)))
			return nil
		}),
		MaxRetries:   5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
	})
	return err
}
