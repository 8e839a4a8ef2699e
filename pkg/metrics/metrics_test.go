package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistryWithConfig_Namespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistryWithConfig(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: "myapp",
		Labels:    prometheus.Labels{"service": "billing"},
	})

	r.TasksExecuted.WithLabelValues("jobs").Inc()

	expected := `
# HELP myapp_executor_tasks_executed_total Total number of task runs, counting each repetition
# TYPE myapp_executor_tasks_executed_total counter
myapp_executor_tasks_executed_total{executor="jobs",service="billing"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "myapp_executor_tasks_executed_total"); err != nil {
		t.Fatal(err)
	}
}

func TestNewRegistry_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRegistry(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering the same collectors twice should panic")
		}
	}()
	NewRegistry(reg)
}
