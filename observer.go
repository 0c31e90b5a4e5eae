package dfa

import "log/slog"

// Observer receives synchronous notifications while a Player walks a
// sequence. Both methods are called from inside Play, so an implementation
// must not mutate the automaton or re-enter the player.
type Observer[S, A comparable] interface {
	// OnStateChanging is called before the player's current state changes.
	// When a replay starts it fires once with prev == next == the initial
	// state, before any symbol is consumed.
	OnStateChanging(prev, next S)

	// OnTransitionFired is called when a transition is about to be taken,
	// before the player commits dst as its current state.
	OnTransitionFired(src S, sym A, dst S)
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil fields
// are skipped, so either notification can be observed on its own.
type ObserverFuncs[S, A comparable] struct {
	StateChanging   func(prev, next S)
	TransitionFired func(src S, sym A, dst S)
}

// OnStateChanging implements Observer.
func (o ObserverFuncs[S, A]) OnStateChanging(prev, next S) {
	if o.StateChanging != nil {
		o.StateChanging(prev, next)
	}
}

// OnTransitionFired implements Observer.
func (o ObserverFuncs[S, A]) OnTransitionFired(src S, sym A, dst S) {
	if o.TransitionFired != nil {
		o.TransitionFired(src, sym, dst)
	}
}

// LogObserver returns an observer that writes every notification to logger
// at debug level. A nil logger falls back to the package default.
func LogObserver[S, A comparable](logger *slog.Logger) Observer[S, A] {
	if logger == nil {
		logger = Logger
	}
	return ObserverFuncs[S, A]{
		StateChanging: func(prev, next S) {
			logger.Debug("state changing", "prev", prev, "next", next)
		},
		TransitionFired: func(src S, sym A, dst S) {
			logger.Debug("transition fired", "src", src, "sym", sym, "dst", dst)
		},
	}
}
