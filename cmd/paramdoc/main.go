// Command paramdoc renders class parameter listings and expands parameters
// directives in documentation sources.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cmd := newRootCmd(logger)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}
