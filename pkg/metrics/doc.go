// Package metrics provides Prometheus instrumentation for goexec executors.
//
// # Quick Start
//
// Create an executor that reports into its own registry:
//
//	reg := prometheus.NewRegistry()
//	ex, err := executor.NewWithMetrics("jobs", 4, metrics.Config{
//		Enabled:  true,
//		Registry: reg,
//	})
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// Several executors may share one Registry; every series carries an
// "executor" label with the executor's name.
//
// # Available Metrics
//
//   - goexec_executor_tasks_scheduled_total{executor,kind}: tasks accepted (kind: once, fixed_delay, cron)
//   - goexec_executor_tasks_executed_total: task runs, counting each repetition
//   - goexec_executor_tasks_failed_total: runs that returned an error or panicked
//   - goexec_executor_tasks_canceled_total: tasks canceled by callers or shutdown
//   - goexec_executor_task_duration_seconds: callback run time
//   - goexec_executor_task_start_delay_seconds: lateness relative to the deadline
//   - goexec_executor_queue_depth: tasks waiting for their deadline
//   - goexec_executor_active_workers: workers inside a callback
//   - goexec_executor_workers: worker goroutines owned by the executor
//
// # Configuration
//
// Config.Namespace replaces the "goexec" prefix and Config.Labels are
// attached as constant labels to every collector.
package metrics
