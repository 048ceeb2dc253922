package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/console"
	"github.com/antocd/clubman-go/internal/domain"
	"github.com/antocd/clubman-go/internal/store"
	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

// rosterApp wires the menu actions to the roster. The roster lives only in
// memory; exiting the program discards it.
type rosterApp struct {
	roster   *store.Roster
	prompter *console.Prompter
	logger   *zap.Logger
}

func newRosterApp(roster *store.Roster, prompter *console.Prompter, logger *zap.Logger) *rosterApp {
	return &rosterApp{roster: roster, prompter: prompter, logger: logger}
}

func (a *rosterApp) signPlayer(ctx context.Context) error {
	number, err := a.prompter.ReadInt("Jersey number for the new player: ")
	if err != nil {
		return err
	}
	dni, err := a.prompter.ReadLine("Player DNI: ")
	if err != nil {
		return err
	}
	name, err := a.prompter.ReadLine("Player name: ")
	if err != nil {
		return err
	}
	position, err := a.choosePosition()
	if err != nil {
		return err
	}
	height, err := a.prompter.ReadFloat("Player height (in meters): ")
	if err != nil {
		return err
	}

	a.roster.Add(number, domain.Player{
		DNI:      dni,
		Name:     name,
		Position: position,
		Height:   height,
	})
	a.prompter.Say("Player signed.")
	a.prompter.Separator()
	return nil
}

// removePlayer keeps asking for a jersey number until one on the roster is
// given, with 0 as an explicit way out.
func (a *rosterApp) removePlayer(ctx context.Context) error {
	for {
		number, err := a.prompter.ReadInt("Jersey number to remove (0 to cancel): ")
		if err != nil {
			return err
		}
		if number == 0 {
			a.prompter.Say("Removal cancelled.")
			a.prompter.Separator()
			return nil
		}
		removed, err := a.roster.Remove(number)
		if err != nil {
			var notFound *apperrors.NotFoundError
			if errors.As(err, &notFound) {
				a.prompter.Say("Nobody wears that number, try another.")
				continue
			}
			return err
		}
		a.prompter.Say("Removed: %s", removed)
		a.prompter.Separator()
		return nil
	}
}

func (a *rosterApp) showSquad(ctx context.Context) error {
	entries := a.roster.List()
	if len(entries) == 0 {
		a.prompter.Say("The squad is empty.")
		a.prompter.Separator()
		return nil
	}
	a.prompter.Say("The squad:")
	for _, entry := range entries {
		a.prompter.Say("Jersey %d: %s", entry.Number, entry.Player)
	}
	a.prompter.Separator()
	return nil
}

func (a *rosterApp) showByPosition(ctx context.Context) error {
	position, err := a.choosePosition()
	if err != nil {
		return err
	}
	entries := a.roster.FilterByPosition(position)
	if len(entries) == 0 {
		a.prompter.Say("No players cover %s.", position)
		a.prompter.Separator()
		return nil
	}
	a.prompter.Say("Players covering %s:", position)
	for _, entry := range entries {
		a.prompter.Say("Jersey %d: %s", entry.Number, entry.Player)
	}
	a.prompter.Separator()
	return nil
}

func (a *rosterApp) sayGoodbye(ctx context.Context) error {
	a.prompter.Say("See you next time.")
	return nil
}

func (a *rosterApp) choosePosition() (domain.Position, error) {
	positions := domain.Positions()
	a.prompter.Say("Choose the position:")
	for i, position := range positions {
		a.prompter.Say("%d. %s", i+1, position)
	}
	choice, err := a.prompter.ReadIntRange("Type the number of the position: ", 1, len(positions))
	if err != nil {
		return 0, err
	}
	position, _ := domain.PositionFromChoice(choice)
	return position, nil
}
