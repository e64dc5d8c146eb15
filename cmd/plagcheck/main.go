package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/knowledge-engine/plagcheck/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := newRootCommand(config.Load())
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
