package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/config"
	"github.com/antocd/clubman-go/internal/console"
	"github.com/antocd/clubman-go/internal/store"
	"github.com/antocd/clubman-go/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("roster manager starting", zap.String("log_level", cfg.Logging.Level))

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	app := newRosterApp(store.NewRoster(logger), prompter, logger)

	menu := console.NewMenu("What do you want to do?", prompter, logger)
	menu.Register("Sign a new player.", app.signPlayer)
	menu.Register("Remove a player by jersey number.", app.removePlayer)
	menu.Register("Show the squad.", app.showSquad)
	menu.Register("Show players by position.", app.showByPosition)
	menu.RegisterExit("Exit.", app.sayGoodbye)

	if err := menu.Run(context.Background()); err != nil {
		logger.Error("console session ended abnormally", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("roster manager stopped")
}
