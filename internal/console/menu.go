package console

import (
	"context"

	"go.uber.org/zap"
)

// Handler runs one menu action. Returning an error reports the failure to the
// operator and brings the menu back; it does not end the loop.
type Handler func(ctx context.Context) error

// Option is one numbered menu entry.
type Option struct {
	Label   string
	Handler Handler
	exit    bool
}

// Menu is the read-choice-dispatch loop driving a program. Options are
// dispatched by the number they were registered under, starting at 1; the
// exit option runs its handler and then ends the loop.
type Menu struct {
	title    string
	prompter *Prompter
	logger   *zap.Logger
	options  []Option
}

func NewMenu(title string, prompter *Prompter, logger *zap.Logger) *Menu {
	return &Menu{
		title:    title,
		prompter: prompter,
		logger:   logger,
	}
}

// Register appends a numbered option.
func (m *Menu) Register(label string, handler Handler) {
	m.options = append(m.options, Option{Label: label, Handler: handler})
}

// RegisterExit appends the option that ends the loop. Its handler, if any,
// runs before the loop stops, even when it fails.
func (m *Menu) RegisterExit(label string, handler Handler) {
	m.options = append(m.options, Option{Label: label, Handler: handler, exit: true})
}

// Run shows the menu, reads a choice and dispatches until the exit option is
// chosen. It returns early only when the input stream ends or the context is
// cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.prompter.Say("%s", m.title)
		for i, opt := range m.options {
			m.prompter.Say("%d. %s", i+1, opt.Label)
		}
		choice, err := m.prompter.ReadInt("Choice: ")
		if err != nil {
			return err
		}
		m.prompter.Separator()

		if choice < 1 || choice > len(m.options) {
			m.prompter.Say("Invalid option.")
			m.prompter.Separator()
			continue
		}

		opt := m.options[choice-1]
		if opt.Handler != nil {
			if err := opt.Handler(ctx); err != nil {
				m.logger.Warn("menu action failed",
					zap.String("action", opt.Label),
					zap.Error(err),
				)
				m.prompter.Say("%s", err.Error())
				m.prompter.Separator()
			}
		}
		if opt.exit {
			return nil
		}
	}
}
