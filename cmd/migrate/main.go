package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/frenetico9/Corte-Digital/internal/config"
	dbpkg "github.com/frenetico9/Corte-Digital/internal/db"
	"github.com/frenetico9/Corte-Digital/internal/logger"
	"github.com/frenetico9/Corte-Digital/internal/timezone"
)

var CLI struct {
	Seed     bool   `help:"Insert the demo barbershops, barbers and services."`
	Timezone string `help:"Timezone used for new barbershops and the backfill." env:"DEFAULT_TIMEZONE"`
	Verbose  bool   `short:"v" help:"Debug logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("migrate"),
		kong.Description("Provision the Corte Digital schema and optionally seed demo data."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	level := cfg.LogLevel
	if CLI.Verbose {
		level = "debug"
	}
	log, err := logger.New(cfg.AppEnv, level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tz := cfg.DefaultTimezone
	if CLI.Timezone != "" {
		tz = CLI.Timezone
	}
	if !timezone.IsValid(tz) {
		return fmt.Errorf("invalid timezone %q", tz)
	}
	timezone.SetDefault(tz)

	ctx := context.Background()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}

	if err := dbpkg.Provision(ctx, db, log); err != nil {
		return err
	}

	if CLI.Seed {
		if err := dbpkg.Seed(ctx, db, log); err != nil {
			return err
		}
		log.Info("demo data seeded")
	}

	return nil
}
