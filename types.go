package dfa

import "log/slog"

// Result classifies the outcome of replaying a symbol sequence
type Result int

const (
	// Ok - the sequence was replayed to the end and stopped in an accepting state
	Ok Result = iota
	// NoTransition - the current state had no transition for the next symbol,
	// so the replay stopped early
	NoTransition
	// NonAcceptingState - every symbol had a valid transition but the final
	// state is not accepting
	NonAcceptingState
)

// String returns a human-readable name for the result
func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case NoTransition:
		return "no transition"
	case NonAcceptingState:
		return "non-accepting state"
	default:
		return "unknown"
	}
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
