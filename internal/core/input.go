package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the session to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move the action selection up
	ActionDown           // Down arrow, j - move the action selection down
	ActionConfirm        // Enter, Space - run the selected care action
	ActionQuit           // Q, Ctrl+C - save and exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "MoveSelectionUp"
	case ActionDown:
		return "MoveSelectionDown"
	case ActionConfirm:
		return "ConfirmAction"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CareAction is one of the entries of the action list a player can confirm.
type CareAction int

const (
	CareEat CareAction = iota
	CarePlay
	CareSleep
	CareMedicine
)

// CareActions is the action list in display order.
var CareActions = []CareAction{CareEat, CarePlay, CareSleep, CareMedicine}

// String returns the label shown in the action list.
func (c CareAction) String() string {
	switch c {
	case CareEat:
		return "Eat"
	case CarePlay:
		return "Play"
	case CareSleep:
		return "Sleep"
	case CareMedicine:
		return "Medicine"
	default:
		return "Unknown"
	}
}
