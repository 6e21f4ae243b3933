package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotdoctor/cmd/dotdoctor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rootCmd := dotdoctor.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(dotdoctor.ExitCode(err, os.Stderr))
}
