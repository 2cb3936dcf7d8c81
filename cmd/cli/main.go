package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/vallme2003/top-coder-challenge/pkg/runtime/terminal"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine"
	"github.com/vallme2003/top-coder-challenge/pkg/services/engine/estimators"
)

func main() {
	_ = godotenv.Load()

	level := zerolog.WarnLevel
	if raw := os.Getenv("REIMBURSE_LOG_LEVEL"); raw != "" {
		parsed, err := zerolog.ParseLevel(raw)
		if err == nil {
			level = parsed
		}
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Registry: engine.NewRegistry(map[string]engine.Factory{
			estimators.LookupName:  estimators.LookupFactory,
			estimators.PatternName: estimators.PatternFactory,
			estimators.TreeName:    estimators.TreeFactory,
			estimators.TieredName:  estimators.TieredFactory,
		}),
		Output: os.Stdout,
		Plain:  os.Getenv("REIMBURSE_PLAIN") != "",
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
