package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"revcheck.app/checker/common/id"
	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/core/config"
)

var version = "dev"

func main() {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries reports
	logger.SetupTo(cfg, os.Stderr)

	if err := id.Init(cfg.NodeID); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize id generator: %v\n", err)
		os.Exit(1)
	}

	app := &cli.Command{
		Name:      "revcheck",
		Usage:     "Check whether revision comments were applied to a revised document",
		UsageText: "revcheck command [command options]",
		Version:   version,
		Commands: []*cli.Command{
			newAnalyzeCmd(cfg).command(),
			commentsCommand(),
			contractionsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
