package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/console"
	"github.com/antocd/clubman-go/internal/domain"
	"github.com/antocd/clubman-go/internal/storage"
	"github.com/antocd/clubman-go/internal/store"
)

// membershipApp wires the menu actions to the membership store and its data
// file. The file is read once at startup and rewritten once on exit; changes
// made during a session that ends any other way are lost.
type membershipApp struct {
	membership *store.Membership
	file       *storage.MemberFile
	prompter   *console.Prompter
	logger     *zap.Logger
	rule       domain.DateRule
	now        func() time.Time
}

func newMembershipApp(
	membership *store.Membership,
	file *storage.MemberFile,
	prompter *console.Prompter,
	logger *zap.Logger,
	rule domain.DateRule,
	now func() time.Time,
) *membershipApp {
	return &membershipApp{
		membership: membership,
		file:       file,
		prompter:   prompter,
		logger:     logger,
		rule:       rule,
		now:        now,
	}
}

func (a *membershipApp) registerMember(ctx context.Context) error {
	dni, err := a.prompter.ReadLine("Member DNI: ")
	if err != nil {
		return err
	}
	name, err := a.prompter.ReadLine("Member name: ")
	if err != nil {
		return err
	}
	joined, err := a.readJoinDate()
	if err != nil {
		return err
	}

	a.membership.Add(domain.NewMember(dni, name, joined))
	a.prompter.Say("Member registered.")
	a.prompter.Separator()
	return nil
}

func (a *membershipApp) removeMember(ctx context.Context) error {
	dni, err := a.prompter.ReadLine("DNI of the member to remove (blank to cancel): ")
	if err != nil {
		return err
	}
	if dni == "" {
		a.prompter.Say("Removal cancelled.")
		a.prompter.Separator()
		return nil
	}
	if _, err := a.membership.Remove(dni); err != nil {
		a.prompter.Say("No member with that DNI.")
		a.prompter.Separator()
		return nil
	}
	a.prompter.Say("Member removed.")
	a.prompter.Separator()
	return nil
}

func (a *membershipApp) modifyMember(ctx context.Context) error {
	dni, err := a.prompter.ReadLine("DNI of the member to modify (blank to cancel): ")
	if err != nil {
		return err
	}
	if dni == "" {
		a.prompter.Say("Modification cancelled.")
		a.prompter.Separator()
		return nil
	}
	current, ok := a.membership.Find(dni)
	if !ok {
		a.prompter.Say("No member with that DNI.")
		a.prompter.Separator()
		return nil
	}
	a.prompter.Say("Member found: %s", current.Display(a.now()))

	a.prompter.Say("What do you want to modify?")
	a.prompter.Say("1. Name")
	a.prompter.Say("2. Join date")
	a.prompter.Say("3. Both")
	choice, err := a.prompter.ReadIntRange("Choice: ", 1, 3)
	if err != nil {
		return err
	}

	var newName *string
	if choice == 1 || choice == 3 {
		name, err := a.prompter.ReadLine("New name: ")
		if err != nil {
			return err
		}
		newName = &name
	}

	var newJoinDate *time.Time
	if choice == 2 || choice == 3 {
		line, err := a.prompter.ReadLine("New join date (dd/mm/yyyy): ")
		if err != nil {
			return err
		}
		joined, err := a.rule.Parse(line, a.now())
		if err != nil {
			a.prompter.Say("Invalid date. Join date unchanged.")
		} else {
			newJoinDate = &joined
		}
	}

	updated, err := a.membership.Modify(dni, newName, newJoinDate)
	if err != nil {
		return err
	}
	a.prompter.Say("Updated member: %s", updated.Display(a.now()))
	a.prompter.Separator()
	return nil
}

func (a *membershipApp) listByName(ctx context.Context) error {
	return a.listMembers(a.membership.ListByName())
}

func (a *membershipApp) listByTenure(ctx context.Context) error {
	return a.listMembers(a.membership.ListByTenure(a.now()))
}

func (a *membershipApp) listMembers(members []domain.Member) error {
	if len(members) == 0 {
		a.prompter.Say("There are no members yet.")
		a.prompter.Separator()
		return nil
	}
	now := a.now()
	for _, m := range members {
		a.prompter.Say("%s", m.Display(now))
	}
	a.prompter.Separator()
	return nil
}

func (a *membershipApp) saveAndExit(ctx context.Context) error {
	a.prompter.Say("See you next time.")
	if err := a.file.Save(a.membership.Snapshot()); err != nil {
		a.logger.Error("could not save members", zap.Error(err))
		a.prompter.Say("Could not save the members file: %v", err)
	}
	return nil
}

// readJoinDate walks the operator through year, month and day, re-prompting
// each component until it passes validation.
func (a *membershipApp) readJoinDate() (time.Time, error) {
	now := a.now()

	var year int
	for {
		y, err := a.prompter.ReadInt("Join year: ")
		if err != nil {
			return time.Time{}, err
		}
		if err := a.rule.ValidateYear(y, now); err != nil {
			a.prompter.Say("Year out of the accepted range.")
			continue
		}
		year = y
		break
	}

	var month int
	for {
		m, err := a.prompter.ReadInt("Join month: ")
		if err != nil {
			return time.Time{}, err
		}
		if err := a.rule.ValidateMonth(m); err != nil {
			a.prompter.Say("Invalid month.")
			continue
		}
		month = m
		break
	}

	for {
		day, err := a.prompter.ReadInt("Join day: ")
		if err != nil {
			return time.Time{}, err
		}
		if err := a.rule.ValidateDay(day, month, year); err != nil {
			a.prompter.Say("Day is not valid for that month.")
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}
}
