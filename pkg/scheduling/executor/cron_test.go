package executor

import (
	"context"
	"testing"
	"time"

	"github.com/vnykmshr/goexec/internal/testutil"
	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
)

func TestParseCron(t *testing.T) {
	tests := []struct {
		expr      string
		expectErr bool
	}{
		{"* * * * * *", false},
		{"0 30 9 * * MON-FRI", false},
		{"0 0/5 * * * *", false},
		{"@every 1s", false},
		{"@daily", false},
		{"", true},
		{"not a schedule", true},
		{"* * * * *", true}, // seconds field is required
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := ParseCron(tt.expr)
			if tt.expectErr {
				testutil.AssertErrorIs(t, err, gferrors.ErrInvalidConfiguration)
				testutil.AssertEqual(t, gferrors.IsValidationError(err), true)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestScheduleCron(t *testing.T) {
	ex := newRunning(t, Config{WorkerCount: 1})

	var n int32
	f, err := ex.ScheduleCron(counting(&n), "* * * * * *")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, f.Deadline().Before(time.Now().Add(time.Second+10*time.Millisecond)), true)

	testutil.WaitForInt32(t, &n, 1, 3*time.Second)
	testutil.AssertEqual(t, f.Cancel(), true)
	testutil.AssertErrorIs(t, f.Wait(), gferrors.ErrCanceled)
}

func TestScheduleCron_InvalidExpression(t *testing.T) {
	ex := newRunning(t, Config{})

	f, err := ex.ScheduleCron(RunnableFunc(func(ctx context.Context) error { return nil }), "61 * * * * *")
	testutil.AssertErrorIs(t, err, gferrors.ErrInvalidConfiguration)
	testutil.AssertEqual(t, f == nil, true)
	testutil.AssertEqual(t, ex.TotalScheduled(), int64(0))
}
