package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/saylorsolutions/pixmask/cmd/internal"
)

// Injected by the build.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		stdout: os.Stdout,
		log:    internal.NewLogger(os.Stderr),
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		stop()
		internal.Fatal("Error: %v", err)
	}
}
