// Command evcharge answers EV charging questions over a location table and
// a road weight matrix.
//
//	evcharge [flags] serve
//	evcharge [flags] query <operation> [arguments]
//
// Flags and EVCHARGE_* environment variables are described in package config.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/evcharge/advisor"
	"github.com/katalvlaran/evcharge/config"
	"github.com/katalvlaran/evcharge/loader"
	"github.com/katalvlaran/evcharge/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/exp/rand"
)

var errUsage = errors.New("usage: evcharge [flags] serve | query <operation> [arguments]")

func main() {
	cfg, err := config.Load("", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := newLogger(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			stop()
			os.Exit(2)
		}
		log.Error("evcharge failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if len(cfg.Args) == 0 {
		return errUsage
	}

	tab, g, err := loader.Load(cfg.LocationsPath, cfg.WeightsPath)
	if err != nil {
		return err
	}
	adv, err := advisor.New(g, tab,
		advisor.WithCostPerDistance(cfg.CostPerDistance),
		advisor.WithFreeChargeLimit(cfg.FreeChargeLimit),
	)
	if err != nil {
		return err
	}
	log.Info("loaded", slog.Int("locations", tab.Len()), slog.String("weights", cfg.WeightsPath))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	switch cfg.Args[0] {
	case "serve":
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		srv := server.New(adv,
			server.WithLogger(log),
			server.WithRegistry(reg),
			server.WithSeed(seed),
		)
		return srv.Run(ctx, cfg.Addr)
	case "query":
		return runQuery(os.Stdout, adv, rand.New(rand.NewSource(seed)), cfg.Args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", cfg.Args[0], errUsage)
	}
}
