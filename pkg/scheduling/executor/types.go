package executor

import (
	"context"
	"time"
)

// Runnable is a unit of work submitted to an Executor.
type Runnable interface {
	// Run performs the work. ctx is canceled when the task's Future is
	// canceled; honoring it is up to the implementation.
	Run(ctx context.Context) error
}

// RunnableFunc is a function type that implements the Runnable interface.
type RunnableFunc func(ctx context.Context) error

// Run implements the Runnable interface for RunnableFunc.
func (f RunnableFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// State is the lifecycle state of an Executor. It only moves forward.
type State int32

const (
	// StateReady is the state after construction.
	StateReady State = iota
	// StateRunning is entered by Start; work is accepted only here.
	StateRunning
	// StateShuttingDown is held while Shutdown drains the queue and joins workers.
	StateShuttingDown
	// StateStopped is entered once every worker has exited.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// TaskState is the state of a single submitted task.
type TaskState int

const (
	// TaskQueued tasks are waiting in the queue for their deadline.
	TaskQueued TaskState = iota
	// TaskRunning tasks are inside their callback on some worker.
	TaskRunning
	// TaskCanceled is only seen on running tasks: Cancel was called during
	// the callback and the task finishes once it returns. Canceling a queued
	// task moves it straight to TaskFinished.
	TaskCanceled
	// TaskFinished tasks will never run again.
	TaskFinished
)

func (s TaskState) String() string {
	switch s {
	case TaskQueued:
		return "queued"
	case TaskRunning:
		return "running"
	case TaskCanceled:
		return "canceled"
	case TaskFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Executor runs Runnables on a fixed pool of worker goroutines, immediately,
// after a delay, or repeatedly.
type Executor interface {
	// Start launches the workers. It may be called once, on a Ready executor.
	Start() error

	// Execute runs r as soon as a worker is free.
	Execute(r Runnable) (*Future, error)

	// Schedule runs r once after delay has elapsed.
	Schedule(r Runnable, delay time.Duration) (*Future, error)

	// ScheduleWithFixedDelay runs r after delay, then again delay after each
	// run completes, until canceled, until a run fails, or until shutdown.
	ScheduleWithFixedDelay(r Runnable, delay time.Duration) (*Future, error)

	// ScheduleCron runs r at every activation of the cron expression expr,
	// measured from the completion of the previous run.
	ScheduleCron(r Runnable, expr string) (*Future, error)

	// Shutdown cancels every queued task, waits for running tasks to finish
	// and joins all workers. It must not be called from inside a task.
	Shutdown() error

	// Name returns the executor name used in logs and metrics.
	Name() string

	// State returns the current lifecycle state.
	State() State

	// Size returns the number of workers.
	Size() int

	// QueueLen returns the number of tasks waiting for their deadline.
	QueueLen() int

	// ActiveWorkers returns the number of workers currently inside a callback.
	ActiveWorkers() int

	// TotalScheduled returns the number of tasks accepted since creation.
	TotalScheduled() int64

	// TotalExecuted returns the number of runs performed, counting each repetition.
	TotalExecuted() int64
}
