// Command website serves the 3.1ST Engineering contact and careers forms.
//
//	website serve               start the HTTP server
//	website mail test --to ADDR send a sample contact notification
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
