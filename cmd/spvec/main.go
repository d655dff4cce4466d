// Command spvec traces the shapes of an image and writes them as vector
// paths.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("spvec failed", "err", err)
		stop()
		os.Exit(1)
	}
}
