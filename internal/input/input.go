// Package input translates player intents into engine commands. Frontends map
// their own devices (keys, mouse, touch) onto Actions and canvas clicks.
package input

import (
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/engine"
)

// Action represents a semantic game action, abstracted from physical input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlip           // Click, Space - flip gravity
	ActionRestart        // R, restart button - new game after game over
	ActionQuit           // Q, Ctrl+C, Esc - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlip:
		return "Flip"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Outcome describes what an action did to the engine.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeFlipped
	OutcomeRestarted
	OutcomeQuit
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeFlipped:
		return "flipped"
	case OutcomeRestarted:
		return "restarted"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Apply performs an action on the engine.
// Flips are ignored once the game is over; restarts only happen then.
func Apply(e *engine.Engine, a Action) Outcome {
	switch a {
	case ActionFlip:
		if e.IsOver() {
			return OutcomeIgnored
		}
		e.FlipGravity()
		return OutcomeFlipped
	case ActionRestart:
		if !e.IsOver() {
			return OutcomeIgnored
		}
		e.Restart()
		return OutcomeRestarted
	case ActionQuit:
		return OutcomeQuit
	default:
		return OutcomeIgnored
	}
}

// ClickAction returns the action a click at canvas coordinates (x, y)
// stands for.
func ClickAction(snap engine.Snapshot, x, y float64) Action {
	return PressAction(snap.Over, core.RestartButton(snap.CanvasW, snap.CanvasH).Contains(x, y))
}

// PressAction maps a pointer press to an action. While running any press
// flips gravity. After game over the only live target is the restart button.
func PressAction(over, onButton bool) Action {
	switch {
	case !over:
		return ActionFlip
	case onButton:
		return ActionRestart
	default:
		return ActionNone
	}
}
