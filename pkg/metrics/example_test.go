package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Example_basicUsage() {
	// Create a separate registry for this example
	registry := NewRegistry(prometheus.NewRegistry())

	registry.TasksScheduled.WithLabelValues("jobs", "once").Add(3)
	registry.TasksExecuted.WithLabelValues("jobs").Add(2)
	registry.QueueDepth.WithLabelValues("jobs").Set(1)

	fmt.Println(testutil.ToFloat64(registry.TasksScheduled.WithLabelValues("jobs", "once")))
	fmt.Println(testutil.ToFloat64(registry.QueueDepth.WithLabelValues("jobs")))

	// Output:
	// 3
	// 1
}

func Example_configuration() {
	// Default configuration
	defaultConfig := DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)
	fmt.Printf("Default namespace: %s\n", defaultConfig.Namespace)

	// Custom configuration
	customConfig := Config{
		Enabled:   false,
		Namespace: "myapp",
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)
	fmt.Printf("Custom namespace: %s\n", customConfig.Namespace)

	// Output:
	// Default enabled: true
	// Default namespace: goexec
	// Custom enabled: false
	// Custom namespace: myapp
}
