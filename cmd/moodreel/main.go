package main

import (
	"context"
	"os"

	"github.com/ewilliams-labs/moodreel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
