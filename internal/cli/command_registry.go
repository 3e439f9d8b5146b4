package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"task-manager/internal/errors"
)

// errExit is returned by the exit entry to end the menu loop.
var errExit = stderrors.New("exit requested")

// Command represents one menu action
type Command interface {
	Execute(ctx context.Context) error
}

type menuEntry struct {
	key     string
	label   string
	command Command
}

// CommandRegistry maps menu choices to commands and renders the menu
type CommandRegistry struct {
	entries  []menuEntry
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("1", "Add task", NewAddCommand(app))
	registry.Register("2", "List tasks", NewListCommand(app))
	registry.Register("3", "Update task status", NewUpdateCommand(app))
	registry.Register("4", "Delete task", NewDeleteCommand(app))
	registry.Register("5", "Exit", exitCommand{})

	return registry
}

// Register adds a command under key; the menu lists entries in registration order.
func (r *CommandRegistry) Register(key, label string, command Command) {
	if _, exists := r.commands[key]; !exists {
		r.entries = append(r.entries, menuEntry{key: key, label: label, command: command})
	}
	r.commands[key] = command
}

// Execute runs the command registered for choice
func (r *CommandRegistry) Execute(ctx context.Context, choice string) error {
	command, exists := r.commands[strings.TrimSpace(choice)]
	if !exists {
		return errors.NewInvalidInputError("menu choice", choice, fmt.Sprintf("choose a number from %s", r.keyRange()))
	}
	return command.Execute(ctx)
}

// Menu renders the main menu
func (r *CommandRegistry) Menu() string {
	var b strings.Builder
	b.WriteString("\n====================\n")
	b.WriteString("     MAIN MENU\n")
	b.WriteString("====================")
	for _, entry := range r.entries {
		fmt.Fprintf(&b, "\n%s. %s", entry.key, entry.label)
	}
	return b.String()
}

// Prompt returns the text shown when asking for a menu choice
func (r *CommandRegistry) Prompt() string {
	return fmt.Sprintf("Choice (%s): ", r.keyRange())
}

func (r *CommandRegistry) keyRange() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[0].key + "-" + r.entries[len(r.entries)-1].key
}

type exitCommand struct{}

func (exitCommand) Execute(ctx context.Context) error {
	return errExit
}
