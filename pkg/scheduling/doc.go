/*
Package scheduling groups the task execution components of goexec.

  - executor: fixed worker pool with delayed, fixed-delay and cron scheduling

Executor:

	ex, err := executor.New("jobs", 4)
	if err != nil {
		log.Fatal(err)
	}
	ex.Start()
	defer ex.Shutdown()

	// One-time task after a delay
	ex.Schedule(task, time.Minute)

	// Recurring task, one minute after each run completes
	ex.ScheduleWithFixedDelay(task, time.Minute)

	// Cron-style scheduling
	ex.ScheduleCron(task, "0 0 9 * * MON-FRI") // Weekdays at 9 AM

Every submission returns a Future that can be waited on or canceled. All
components are safe for concurrent use and pass a context to each task that
is canceled along with the task.
*/
package scheduling
