package executor

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
)

// policy decides when a task runs first and whether it runs again.
type policy interface {
	kind() string
	first(now time.Time) time.Time
	next(completed time.Time) (time.Time, bool)
}

type oneShot struct {
	delay time.Duration
}

func (p oneShot) kind() string                  { return "once" }
func (p oneShot) first(now time.Time) time.Time { return now.Add(p.delay) }

func (p oneShot) next(time.Time) (time.Time, bool) {
	return time.Time{}, false
}

// fixedDelay measures the gap from the end of one run to the start of the next.
type fixedDelay struct {
	delay time.Duration
}

func (p fixedDelay) kind() string                  { return "fixed_delay" }
func (p fixedDelay) first(now time.Time) time.Time { return now.Add(p.delay) }

func (p fixedDelay) next(completed time.Time) (time.Time, bool) {
	return completed.Add(p.delay), true
}

type cronPolicy struct {
	schedule cron.Schedule
}

func (p cronPolicy) kind() string { return "cron" }

func (p cronPolicy) first(now time.Time) time.Time {
	return p.schedule.Next(now)
}

// next reports false when the schedule has no further activation.
func (p cronPolicy) next(completed time.Time) (time.Time, bool) {
	t := p.schedule.Next(completed)
	return t, !t.IsZero()
}

// task is one submission. Every field below ctx is guarded by ex.mu.
type task struct {
	id       string
	ex       *executor
	runnable Runnable
	policy   policy
	ctx      context.Context
	cancel   context.CancelFunc

	state    TaskState
	deadline time.Time
	seq      uint64
	index    int
	runs     int
	err      error
	canceled bool
}

func newTask(ex *executor, r Runnable, p policy) *task {
	ctx, cancel := context.WithCancel(context.Background())
	return &task{
		id:       uuid.NewString(),
		ex:       ex,
		runnable: r,
		policy:   p,
		ctx:      ctx,
		cancel:   cancel,
		state:    TaskQueued,
		index:    -1,
	}
}

// run executes one activation of t on worker w. The caller holds ex.mu and
// has already popped t from the queue.
func (t *task) run(w *worker) {
	e := t.ex
	switch t.state {
	case TaskCanceled:
		t.finishLocked()
		return
	case TaskQueued:
	default:
		panic(fmt.Sprintf("executor: task %s dequeued in state %s", t.id, t.state))
	}

	t.state = TaskRunning
	e.active++
	start := time.Now()
	e.metrics.taskStarted(start.Sub(t.deadline), e.active)

	var err error
	returned := false
	defer func() {
		if returned {
			return
		}
		// The callback ended its goroutine with runtime.Goexit.
		t.complete(w, start, gferrors.NewOperationError(module, "Run", gferrors.ErrAborted).
			WithContext("task "+t.id))
		t.finishLocked()
		e.cond.Broadcast()
	}()

	func() {
		e.mu.Unlock()
		defer e.mu.Lock()
		err = t.invoke(w)
	}()
	returned = true

	t.complete(w, start, err)

	if t.state == TaskRunning && err == nil {
		if next, ok := t.policy.next(time.Now()); ok {
			if e.state == StateRunning {
				t.deadline = next
				t.seq = e.nextSeqLocked()
				t.state = TaskQueued
				e.queue.push(t)
				e.metrics.queueDepth(e.queue.Len())
				return
			}
			// Shutdown has already drained the queue.
			t.canceled = true
			e.metrics.taskCanceled()
		}
	}
	t.finishLocked()
}

// complete records the end of one run. The caller holds ex.mu.
func (t *task) complete(w *worker, start time.Time, err error) {
	e := t.ex
	e.active--
	t.runs++
	e.totalExecuted++
	e.metrics.taskCompleted(time.Since(start), err, e.active)
	if err != nil {
		t.err = err
		e.log.Debugw("task failed", "task", t.id, "worker", w.id, "run", t.runs, "error", err)
	}
}

// invoke calls the runnable with ex.mu released. Panics, including panics in
// OnTaskStart, are turned into errors.
func (t *task) invoke(w *worker) (err error) {
	cfg := &t.ex.cfg
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = gferrors.NewOperationError(module, "Run", gferrors.ErrPanicked).
				WithContext(fmt.Sprintf("task %s: %v", t.id, r))
			t.ex.log.Warnw("task panicked", "task", t.id, "worker", w.id, "panic", r)
			if cfg.PanicHandler != nil {
				cfg.PanicHandler(t.id, r, stack)
			}
		}
		if cfg.OnTaskComplete != nil {
			cfg.OnTaskComplete(w.id, t.id, err, time.Since(start))
		}
	}()

	if cfg.OnTaskStart != nil {
		cfg.OnTaskStart(w.id, t.id)
	}
	return t.runnable.Run(t.ctx)
}

// cancelLocked requests cancellation. A queued task leaves the queue and
// finishes at once; a running task is marked and finishes when its callback
// returns. It reports false if t was already canceled or finished.
func (t *task) cancelLocked() bool {
	e := t.ex
	switch t.state {
	case TaskQueued:
		e.queue.remove(t)
		e.metrics.queueDepth(e.queue.Len())
		t.canceled = true
		t.state = TaskCanceled
		t.finishLocked()
	case TaskRunning:
		t.canceled = true
		t.state = TaskCanceled
		t.cancel()
	default:
		return false
	}
	e.metrics.taskCanceled()
	e.cond.Broadcast()
	return true
}

func (t *task) finishLocked() {
	t.state = TaskFinished
	t.cancel()
	t.ex.log.Debugw("task finished", "task", t.id, "runs", t.runs, "canceled", t.canceled)
}

// resultLocked is the outcome reported to waiters once t is finished.
func (t *task) resultLocked() error {
	if t.err != nil {
		return t.err
	}
	if t.canceled {
		return gferrors.ErrCanceled
	}
	return nil
}
