// SPDX-License-Identifier: MIT

// Command modsplit partitions an undirected graph into communities by
// recursive leading-eigenvector bisection of the modularity matrix.
//
//	modsplit partition karate.gml --refine --output yaml
//	modsplit diagnose karate.gml --groups result.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
