package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pahunapath/internal/cli"
	"pahunapath/internal/config"
	"pahunapath/internal/guard"
	"pahunapath/internal/logging"
)

func main() {
	logging.New("warn")

	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		if sessionPath, err = guard.DefaultSessionPath(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.NewApp(cfg, sessionPath, os.Stdin, os.Stdout))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
