package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/famomatic/ytscrape/client"
	"github.com/famomatic/ytscrape/internal/cli"
	"github.com/famomatic/ytscrape/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(config.Load())
	if err := app.Command().ExecuteContext(ctx); err != nil {
		app.Log.WithField("category", client.ClassifyError(err)).Error(err)
		stop()
		os.Exit(1)
	}
}
