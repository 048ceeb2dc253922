package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/config"
	"github.com/antocd/clubman-go/internal/console"
	"github.com/antocd/clubman-go/internal/domain"
	"github.com/antocd/clubman-go/internal/storage"
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

	logger.Info("membership manager starting",
		zap.String("data_file", cfg.Storage.DataFile),
		zap.String("log_level", cfg.Logging.Level),
	)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	membership := store.NewMembership(logger)
	file := storage.NewMemberFile(cfg.Storage.DataFile, logger)

	// Whatever loaded before a read failure is still worth keeping.
	members, err := file.Load()
	if err != nil {
		logger.Error("could not load members", zap.Error(err))
		prompter.Say("Could not read the members file: %v", err)
	}
	membership.Replace(members)

	rule := domain.DateRule{
		MinYear: cfg.Rules.MinJoinYear,
		Strict:  cfg.Rules.StrictDates,
	}
	app := newMembershipApp(membership, file, prompter, logger, rule, time.Now)

	menu := console.NewMenu("What do you want to do?", prompter, logger)
	menu.Register("Register a new member.", app.registerMember)
	menu.Register("Remove a member.", app.removeMember)
	menu.Register("Modify a member's details.", app.modifyMember)
	menu.Register("List members by name.", app.listByName)
	menu.Register("List members by seniority.", app.listByTenure)
	menu.RegisterExit("Exit.", app.saveAndExit)

	if err := menu.Run(context.Background()); err != nil {
		logger.Error("console session ended abnormally", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("membership manager stopped")
}
