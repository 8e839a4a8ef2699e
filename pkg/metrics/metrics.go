package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the collectors shared by every executor reporting into one
// Prometheus registerer. Each executor is distinguished by the "executor" label.
type Registry struct {
	// Task lifecycle
	TasksScheduled        *prometheus.CounterVec
	TasksExecuted         *prometheus.CounterVec
	TasksFailed           *prometheus.CounterVec
	TasksCanceled         *prometheus.CounterVec
	TaskExecutionDuration *prometheus.HistogramVec
	TaskStartDelay        *prometheus.HistogramVec

	// Pool state
	QueueDepth    *prometheus.GaugeVec
	ActiveWorkers *prometheus.GaugeVec
	Workers       *prometheus.GaugeVec
}

// NewRegistry registers the executor collectors on reg under the default namespace.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig registers the executor collectors described by cfg.
// A nil cfg.Registry falls back to prometheus.DefaultRegisterer.
func NewRegistryWithConfig(cfg Config) *Registry {
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Registry{
		TasksScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "tasks_scheduled_total",
				Help:        "Total number of tasks accepted by the executor",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor", "kind"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "tasks_executed_total",
				Help:        "Total number of task runs, counting each repetition",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "tasks_failed_total",
				Help:        "Total number of task runs that returned an error or panicked",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		TasksCanceled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "tasks_canceled_total",
				Help:        "Total number of tasks canceled by callers or by shutdown",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "task_duration_seconds",
				Help:        "Time spent running task callbacks",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		TaskStartDelay: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "task_start_delay_seconds",
				Help:        "Time between a task's deadline and the start of its run",
				Buckets:     prometheus.ExponentialBuckets(0.0005, 2, 12),
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "queue_depth",
				Help:        "Number of tasks waiting for their deadline",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		ActiveWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "active_workers",
				Help:        "Number of workers currently running a task",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),

		Workers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "executor",
				Name:        "workers",
				Help:        "Number of worker goroutines owned by the executor",
				ConstLabels: cfg.Labels,
			},
			[]string{"executor"},
		),
	}
}
