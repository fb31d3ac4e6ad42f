package ecosystem

import (
	"fmt"
	"sync"
)

// Receiver carries out the actions commands ask for. Manager implements it.
type Receiver interface {
	PerformAction(action, target string) string
}

// Command is a reversible request against a Receiver.
type Command interface {
	Execute() string
	Undo() string
	Description() string
}

// action is a command made of a do and an undo action on one receiver.
// It runs at most once until undone.
type action struct {
	receiver    Receiver
	label       string
	do, undo    string
	target      string
	undoTarget  string
	description string
	executed    bool
}

func (c *action) Execute() string {
	if c.executed {
		return fmt.Sprintf("Command already executed: %s %s", c.label, c.target)
	}
	c.executed = true
	return c.receiver.PerformAction(c.do, c.target)
}

func (c *action) Undo() string {
	if !c.executed {
		return fmt.Sprintf("Nothing to undo for: %s %s", c.label, c.target)
	}
	c.executed = false
	return c.receiver.PerformAction(c.undo, c.undoTarget)
}

func (c *action) Description() string { return c.description }

// NewFeedCommand feeds animal; undoing it reverses the feeding.
func NewFeedCommand(r Receiver, animal string) Command {
	return &action{
		receiver:    r,
		label:       "Feed",
		do:          ActionFeed,
		undo:        ActionUnfeed,
		target:      animal,
		undoTarget:  animal,
		description: "Feed animal: " + animal,
	}
}

// NewMoveCommand moves animal to location; undoing it returns the animal.
func NewMoveCommand(r Receiver, animal, location string) Command {
	target := animal + " to " + location
	return &action{
		receiver:    r,
		label:       "Move",
		do:          ActionMove,
		undo:        ActionReturn,
		target:      target,
		undoTarget:  animal,
		description: "Move animal: " + target,
	}
}

// NewTreatCommand gives animal a treatment; undoing it withdraws the treatment.
func NewTreatCommand(r Receiver, animal, treatment string) Command {
	target := animal + " with " + treatment
	return &action{
		receiver:    r,
		label:       "Treat",
		do:          ActionTreat,
		undo:        ActionUntreat,
		target:      target,
		undoTarget:  animal,
		description: "Treat animal: " + target,
	}
}

// Invoker runs commands and keeps a linear history for undo and redo.
// Executing a new command after an undo discards the undone commands.
type Invoker struct {
	mu      sync.Mutex
	history []Command
	current int
}

// NewInvoker returns an invoker with an empty history.
func NewInvoker() *Invoker {
	return &Invoker{current: -1}
}

// Execute runs c and records it as the newest history entry.
func (inv *Invoker) Execute(c Command) string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.history = append(inv.history[:inv.current+1], c)
	inv.current++
	return c.Execute()
}

// Undo reverses the current command. It reports false when there is nothing
// to undo.
func (inv *Invoker) Undo() (string, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.current < 0 {
		return "Nothing to undo", false
	}
	c := inv.history[inv.current]
	inv.current--
	return c.Undo(), true
}

// Redo re-runs the most recently undone command. It reports false when there
// is nothing to redo.
func (inv *Invoker) Redo() (string, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.current+1 >= len(inv.history) {
		return "Nothing to redo", false
	}
	inv.current++
	return inv.history[inv.current].Execute(), true
}

// History lists the recorded commands, numbered from one, marking the
// current one.
func (inv *Invoker) History() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	lines := make([]string, len(inv.history))
	for i, c := range inv.history {
		lines[i] = fmt.Sprintf("%d. %s", i+1, c.Description())
		if i == inv.current {
			lines[i] += " <- Current"
		}
	}
	return lines
}

// Position returns the one-based index of the current command and the
// history length.
func (inv *Invoker) Position() (current, total int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.current + 1, len(inv.history)
}

// Clear drops the whole history.
func (inv *Invoker) Clear() {
	inv.mu.Lock()
	inv.history = nil
	inv.current = -1
	inv.mu.Unlock()
}
