/*
Package executor provides a bounded pool of worker goroutines that runs tasks
immediately, after a delay, or repeatedly, and hands back a Future for each
submitted task.

Basic usage:

	ex, err := executor.New("jobs", 4)
	if err != nil {
		log.Fatal(err)
	}
	if err := ex.Start(); err != nil {
		log.Fatal(err)
	}
	defer ex.Shutdown()

	future, err := ex.Execute(executor.RunnableFunc(func(ctx context.Context) error {
		// Do work
		return nil
	}))
	if err != nil {
		log.Fatal(err)
	}
	if err := future.Wait(); err != nil {
		log.Printf("task failed: %v", err)
	}

Scheduling:

Work is accepted only while the executor is running. Three forms are offered:

	ex.Execute(task)                                 // as soon as a worker is free
	ex.Schedule(task, 5*time.Second)                 // once, after 5s
	ex.ScheduleWithFixedDelay(task, time.Minute)     // every minute, measured from the end of each run
	ex.ScheduleCron(task, "0 0/5 * * * *")           // cron, six fields with seconds

Tasks run in deadline order. Tasks with equal deadlines run in submission
order. A repeating task never overlaps itself: its next deadline is computed
only after the current run returns. A repeating task stops repeating when it
is canceled, when a run returns an error or panics, or when the executor shuts
down.

Futures:

A Future waits for and cancels one task:

	future.Wait()                          // until finished
	future.WaitTimeout(time.Second)        // bounded
	future.WaitContext(ctx)                // until ctx is done
	future.Cancel()                        // remove from the queue, or stop repeating

Cancel never interrupts a running callback. It cancels the context passed to
Runnable.Run and guarantees the task will not be run again; callbacks that
want to stop early should watch ctx.Done(). Wait returns ErrCanceled for a
canceled task unless its last run returned an error of its own.

Shutdown:

Shutdown cancels every queued task, waits for running callbacks to return and
joins the workers. No task runs after Shutdown returns. Shutdown blocks on the
workers, so it must not be called from inside a task.

Configuration:

	ex, err := executor.NewWithConfig(executor.Config{
		Name:             "jobs",
		WorkerCount:      8,
		IdlePollInterval: time.Second,
		Logger:           logger,
		PanicHandler: func(taskID string, recovered interface{}, stack []byte) {
			logger.Error("task panicked", zap.String("task", taskID), zap.Any("panic", recovered))
		},
	})

Metrics:

	ex, err := executor.NewWithMetrics("jobs", 4, metrics.Config{
		Enabled:  true,
		Registry: prometheus.DefaultRegisterer,
	})

Retries:

BackoffRunnable retries a Runnable with exponential backoff inside a single run:

	ex.Execute(executor.BackoffRunnable{
		Runnable:     fetch,
		MaxRetries:   3,
		InitialDelay: 100 * time.Millisecond,
	})

Thread Safety:

All Executor and Future methods are safe for concurrent use. Task callbacks
run without any executor lock held, so they may submit new work, cancel
futures and query the executor.
*/
package executor
