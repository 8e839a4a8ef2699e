/*
Package goexec provides a task executor for Go applications: a bounded pool
of worker goroutines that runs work immediately, after a delay, or repeatedly,
and returns a cancellable, waitable Future for every submission.

Task Scheduling (pkg/scheduling):
  - executor: worker pool, deadline queue, fixed-delay and cron repetition, Futures

Supporting packages:
  - pkg/metrics: Prometheus collectors for executors
  - pkg/common/errors: sentinel errors and structured error types
  - pkg/common/cond: condition variable with timed wait

Example usage:

	import (
		"github.com/vnykmshr/goexec/pkg/scheduling/executor"
	)

	ex, _ := executor.New("jobs", 4) // 4 workers
	ex.Start()
	defer ex.Shutdown()

	future, _ := ex.Schedule(task, time.Second)
	err := future.Wait()
*/
package goexec
