package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/celestiaorg/credential-registration/cmd/credregd/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
