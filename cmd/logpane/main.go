package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/logpane/logpane/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	logFile := flag.String("file", "", "log file to tail into the console (optional)")
	demoRate := flag.Int("rate", 0, "synthetic records per second (optional, overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		LogFile:    *logFile,
	}
	if rate := *demoRate; rate > 0 {
		opts.DemoRate = rate
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logpane: %v\n", err)
		return 1
	}
	return 0
}
