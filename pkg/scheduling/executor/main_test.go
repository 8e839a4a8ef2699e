package executor

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Every test must shut down the executors it starts.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
