package executor

import (
	"sync"
	"time"

	"github.com/creasty/defaults"
	"go.uber.org/zap"

	"github.com/vnykmshr/goexec/pkg/common/cond"
	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
	"github.com/vnykmshr/goexec/pkg/common/validation"
	"github.com/vnykmshr/goexec/pkg/metrics"
)

const module = "executor"

// executor implements Executor. mu guards every field below it, the state of
// every task it owns, and the queue; cond is bound to mu.
type executor struct {
	cfg     Config
	log     *zap.SugaredLogger
	metrics *executorMetrics
	workers []*worker
	wg      sync.WaitGroup

	mu             sync.Mutex
	cond           *cond.Cond
	queue          taskQueue
	state          State
	seq            uint64
	active         int
	totalScheduled int64
	totalExecuted  int64
}

var _ metrics.Instrumentable = (*executor)(nil)

// New creates an executor with the given name and number of workers.
// The executor does not run anything until Start is called.
func New(name string, workers int) (Executor, error) {
	if err := validateArgs(name, workers); err != nil {
		return nil, err
	}
	return NewWithConfig(Config{Name: name, WorkerCount: workers})
}

// NewSingleThread creates and starts an executor with a single worker.
func NewSingleThread(name string) (Executor, error) {
	ex, err := New(name, 1)
	if err != nil {
		return nil, err
	}
	if err := ex.Start(); err != nil {
		return nil, err
	}
	return ex, nil
}

// NewWithConfig creates an executor from cfg. Zero fields take their defaults.
func NewWithConfig(cfg Config) (Executor, error) {
	return newExecutor(cfg)
}

func newExecutor(cfg Config) (*executor, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, gferrors.NewOperationError(module, "New", err).WithContext("applying config defaults")
	}
	if err := validation.ValidatePositive(module, "WorkerCount", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveDuration(module, "IdlePollInterval", cfg.IdlePollInterval); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	e := &executor{
		cfg:     cfg,
		log:     logger.Named(module).Sugar().With("executor", cfg.Name),
		metrics: newExecutorMetrics(cfg.Metrics, cfg.Name),
		state:   StateReady,
	}
	e.cond = cond.New(&e.mu)
	e.workers = make([]*worker, cfg.WorkerCount)
	for i := range e.workers {
		e.workers[i] = &worker{id: i, ex: e}
	}
	e.metrics.setWorkers(cfg.WorkerCount)

	return e, nil
}

func validateArgs(name string, workers int) error {
	if err := validation.ValidateNotEmpty(module, "name", name); err != nil {
		return err
	}
	return validation.ValidatePositive(module, "workers", workers)
}

func (e *executor) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateReady {
		return e.lifecycleErrorLocked("Start", gferrors.ErrAlreadyStarted)
	}

	e.state = StateRunning
	e.wg.Add(len(e.workers))
	for _, w := range e.workers {
		go w.loop()
	}
	e.log.Infow("executor started", "workers", len(e.workers))
	return nil
}

func (e *executor) Execute(r Runnable) (*Future, error) {
	return e.Schedule(r, 0)
}

func (e *executor) Schedule(r Runnable, delay time.Duration) (*Future, error) {
	if err := validation.ValidateNonNegativeDuration(module, "delay", delay); err != nil {
		return nil, err
	}
	return e.submit("Schedule", r, oneShot{delay: delay})
}

func (e *executor) ScheduleWithFixedDelay(r Runnable, delay time.Duration) (*Future, error) {
	if err := validation.ValidatePositiveDuration(module, "delay", delay); err != nil {
		return nil, err
	}
	return e.submit("ScheduleWithFixedDelay", r, fixedDelay{delay: delay})
}

func (e *executor) submit(op string, r Runnable, p policy) (*Future, error) {
	if err := validateRunnable(r); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return nil, e.lifecycleErrorLocked(op, gferrors.ErrNotRunning)
	}

	t := newTask(e, r, p)
	t.deadline = p.first(time.Now())
	t.seq = e.nextSeqLocked()
	e.queue.push(t)
	e.totalScheduled++

	e.metrics.taskScheduled(p.kind())
	e.metrics.queueDepth(e.queue.Len())
	e.log.Debugw("task scheduled", "task", t.id, "kind", p.kind(), "deadline", t.deadline)

	// Futures wait on the same condition, so a single signal could be
	// consumed by a waiter that is not a worker.
	e.cond.Broadcast()
	return newFuture(t), nil
}

func validateRunnable(r Runnable) error {
	if f, ok := r.(RunnableFunc); ok && f == nil {
		r = nil
	}
	return validation.ValidateNotNil(module, "runnable", r)
}

func (e *executor) Shutdown() error {
	e.mu.Lock()
	if e.state != StateRunning {
		err := e.lifecycleErrorLocked("Shutdown", gferrors.ErrNotRunning)
		e.mu.Unlock()
		return err
	}

	e.state = StateShuttingDown
	drained := e.queue.Len()
	e.log.Infow("executor shutting down", "queued", drained, "active", e.active)

	// Canceling a queued task removes it and finishes it immediately.
	for e.queue.Len() > 0 {
		e.queue.peek().cancelLocked()
	}
	e.cond.Broadcast()
	e.mu.Unlock()

	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateStopped
	e.metrics.setWorkers(0)
	e.log.Infow("executor stopped", "canceled", drained, "executed", e.totalExecuted)
	return nil
}

func (e *executor) lifecycleErrorLocked(op string, err error) error {
	e.log.Errorw("lifecycle violation", "operation", op, "state", e.state.String(), "error", err)
	return gferrors.NewLifecycleError(module, op, e.state.String(), err)
}

func (e *executor) nextSeqLocked() uint64 {
	e.seq++
	return e.seq
}

func (e *executor) Name() string {
	return e.cfg.Name
}

func (e *executor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *executor) Size() int {
	return len(e.workers)
}

func (e *executor) QueueLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.Len()
}

func (e *executor) ActiveWorkers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *executor) TotalScheduled() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalScheduled
}

func (e *executor) TotalExecuted() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalExecuted
}

// MetricsEnabled reports whether the executor reports to a metrics registry.
func (e *executor) MetricsEnabled() bool {
	return e.metrics != nil
}
