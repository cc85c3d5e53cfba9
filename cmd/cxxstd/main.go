package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/cxxstd/internal/cli"
	"github.com/leapstack-labs/cxxstd/internal/cli/commands"
)

// Exit codes. A floor violation is an expected outcome and gets its own
// code so CI can distinguish it from tool failures.
const (
	exitOK        = 0
	exitViolation = 1
	exitFailure   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx)
	if err == nil {
		os.Exit(exitOK)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, commands.ErrViolation) {
		os.Exit(exitViolation)
	}
	os.Exit(exitFailure)
}
