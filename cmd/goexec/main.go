// Command goexec runs a demo workload on a goexec executor and exposes its
// metrics over HTTP.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
