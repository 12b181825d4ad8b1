// Package main runs the armory weapon simulator: a single player with a
// starting loadout, driven by the terminal or by a replay script.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/driver"
	"github.com/cory-johannsen/armory/internal/frontend/tui"
	"github.com/cory-johannsen/armory/internal/observability"
	"github.com/cory-johannsen/armory/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	envPath := flag.String("env", ".env", "optional dotenv file with ARMORY_* overrides")
	replayPath := flag.String("replay", "", "replay script to run headless instead of the terminal frontend")
	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatalf("loading env file: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *replayPath != "" {
		cfg.Driver.Frontend = "replay"
		cfg.Driver.Replay = *replayPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatal("initializing tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("flushing traces", zap.Error(err))
		}
	}()

	logger.Info("starting armory",
		zap.String("frontend", cfg.Driver.Frontend),
		zap.Duration("tick_interval", cfg.Driver.TickInterval),
		zap.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	app, cleanup, err := initializeApp(cfg, logger)
	if err != nil {
		logger.Fatal("assembling simulation", zap.Error(err))
	}
	defer cleanup()

	lifecycle := server.NewLifecycle(logger)

	switch cfg.Driver.Frontend {
	case "replay":
		script, err := driver.LoadScript(cfg.Driver.Replay)
		if err != nil {
			logger.Fatal("loading replay", zap.Error(err))
		}
		loop := driver.NewLoop(app.Player, driver.NewScriptInput(script), cfg.Driver.TickInterval, logger, app.Tracer)
		lifecycle.Add("replay", &server.FuncService{
			StartFn: func() error { return loop.Replay(ctx, script.TickSeconds) },
			StopFn:  loop.Stop,
		})
		defer func() {
			fmt.Fprintln(os.Stdout, strings.Join(app.HUD.View().Lines(), "\n"))
			logger.Info("replay finished", zap.Uint64("ticks", loop.Ticks()))
		}()

	default:
		screen, err := tui.NewScreen()
		if err != nil {
			logger.Fatal("opening terminal", zap.Error(err))
		}
		term, err := tui.New(screen, logger)
		if err != nil {
			logger.Fatal("opening terminal", zap.Error(err))
		}
		app.HUD.Changed.Subscribe(term.Draw)
		term.Draw(app.HUD.View())

		loop := driver.NewLoop(app.Player, term, cfg.Driver.TickInterval, logger, app.Tracer)
		lifecycle.Add("terminal", term)
		lifecycle.Add("driver", &server.FuncService{
			StartFn: func() error { return loop.Run(ctx) },
			StopFn:  loop.Stop,
		})
	}

	logger.Info("armory initialized",
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
	}
}
