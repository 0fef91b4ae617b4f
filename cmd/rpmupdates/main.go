package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ralt/rpmupdates/internal/cli"
	"github.com/ralt/rpmupdates/internal/models"
	"github.com/sirupsen/logrus"
)

func main() {
	// Answers go to stdout, logs stay on stderr
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	logrus.Error(err)
	stop()
	if models.IsErrorType(err, models.ErrInvalidConfig) {
		os.Exit(2)
	}
	os.Exit(1)
}
