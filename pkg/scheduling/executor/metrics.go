package executor

import (
	"time"

	"github.com/vnykmshr/goexec/pkg/metrics"
)

// executorMetrics binds a shared Registry to one executor's label value.
// A nil *executorMetrics records nothing.
type executorMetrics struct {
	reg  *metrics.Registry
	name string
}

func newExecutorMetrics(reg *metrics.Registry, name string) *executorMetrics {
	if reg == nil {
		return nil
	}
	return &executorMetrics{reg: reg, name: name}
}

func (m *executorMetrics) setWorkers(n int) {
	if m == nil {
		return
	}
	m.reg.Workers.WithLabelValues(m.name).Set(float64(n))
}

func (m *executorMetrics) taskScheduled(kind string) {
	if m == nil {
		return
	}
	m.reg.TasksScheduled.WithLabelValues(m.name, kind).Inc()
}

func (m *executorMetrics) taskStarted(lateness time.Duration, active int) {
	if m == nil {
		return
	}
	if lateness < 0 {
		lateness = 0
	}
	m.reg.TaskStartDelay.WithLabelValues(m.name).Observe(lateness.Seconds())
	m.reg.ActiveWorkers.WithLabelValues(m.name).Set(float64(active))
}

func (m *executorMetrics) taskCompleted(d time.Duration, err error, active int) {
	if m == nil {
		return
	}
	m.reg.TasksExecuted.WithLabelValues(m.name).Inc()
	m.reg.TaskExecutionDuration.WithLabelValues(m.name).Observe(d.Seconds())
	if err != nil {
		m.reg.TasksFailed.WithLabelValues(m.name).Inc()
	}
	m.reg.ActiveWorkers.WithLabelValues(m.name).Set(float64(active))
}

func (m *executorMetrics) taskCanceled() {
	if m == nil {
		return
	}
	m.reg.TasksCanceled.WithLabelValues(m.name).Inc()
}

func (m *executorMetrics) queueDepth(n int) {
	if m == nil {
		return
	}
	m.reg.QueueDepth.WithLabelValues(m.name).Set(float64(n))
}

// NewWithMetrics creates an executor that reports to the registry described
// by cfg. When cfg.Enabled is false it behaves like New.
func NewWithMetrics(name string, workers int, cfg metrics.Config) (Executor, error) {
	if err := validateArgs(name, workers); err != nil {
		return nil, err
	}
	ecfg := Config{Name: name, WorkerCount: workers}
	if cfg.Enabled {
		ecfg.Metrics = metrics.NewRegistryWithConfig(cfg)
	}
	return NewWithConfig(ecfg)
}
