package executor

import (
	"time"

	"go.uber.org/zap"

	"github.com/vnykmshr/goexec/pkg/metrics"
)

// Config holds configuration options for creating an executor.
// Zero fields are filled from the `default` tags.
type Config struct {
	// Name identifies the executor in logs and metric labels.
	Name string `default:"executor"`

	// WorkerCount is the number of worker goroutines.
	// Must be greater than 0 once defaults are applied.
	WorkerCount int `default:"1"`

	// IdlePollInterval bounds how long an idle worker sleeps before
	// re-checking the queue and the executor state.
	IdlePollInterval time.Duration `default:"250ms"`

	// Logger receives lifecycle and task events. Defaults to zap.L().
	Logger *zap.Logger `default:"-"`

	// Metrics, when set, receives executor metrics.
	Metrics *metrics.Registry `default:"-"`

	// PanicHandler is called when a task panics. The panic is also
	// reported to the task's Future as an error wrapping ErrPanicked.
	PanicHandler func(taskID string, recovered interface{}, stack []byte)

	// OnTaskStart is called on the worker goroutine before a run begins.
	OnTaskStart func(workerID int, taskID string)

	// OnTaskComplete is called on the worker goroutine after a run ends
	// (success, failure, or panic).
	OnTaskComplete func(workerID int, taskID string, err error, duration time.Duration)
}
