package dfa

import "log/slog"

// Player replays symbol sequences against a single automaton and classifies
// each sequence as accepted or rejected.
//
// The player holds a reference to the automaton, not a copy, so the
// automaton must outlive every player bound to it. Play never mutates the
// automaton, but it does mutate the player's own bookkeeping, so one Player
// instance must not be shared between concurrent Play calls; give each
// goroutine its own Player instead.
type Player[S, A comparable] struct {
	dfa      *Automaton[S, A]
	observer Observer[S, A]
	logger   *slog.Logger

	current S
	pos     int
	lastSym A
}

// PlayerOption is a functional option for configuring a Player
type PlayerOption[S, A comparable] func(*Player[S, A])

// WithObserver attaches an observer that is notified of every state change
// and fired transition during Play
func WithObserver[S, A comparable](o Observer[S, A]) PlayerOption[S, A] {
	return func(p *Player[S, A]) {
		p.observer = o
	}
}

// WithLogger sets the logger for the player
func WithLogger[S, A comparable](logger *slog.Logger) PlayerOption[S, A] {
	return func(p *Player[S, A]) {
		p.logger = logger
	}
}

// NewPlayer creates a player bound to d. The automaton should have its
// states and transitions in place before the first Play call; replaying on
// an automaton with no states walks from the zero value of S and rejects
// everything.
func NewPlayer[S, A comparable](d *Automaton[S, A], opts ...PlayerOption[S, A]) *Player[S, A] {
	p := &Player[S, A]{
		dfa:    d,
		logger: Logger,
		pos:    -1, // nothing replayed yet
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetObserver replaces the player's observer. A nil observer disables
// notifications.
func (p *Player[S, A]) SetObserver(o Observer[S, A]) {
	p.observer = o
}

// Observer returns the currently attached observer, or nil.
func (p *Player[S, A]) Observer() Observer[S, A] {
	return p.observer
}

// Play replays seq from the automaton's initial state and returns the
// classified outcome:
//
//   - Ok: every symbol had a transition and the walk ended in an accepting
//     state.
//   - NoTransition: some symbol had no transition from the state reached at
//     that point; CurrentState and Position still reflect the last state
//     successfully entered, and LastSymbol is the symbol that failed.
//   - NonAcceptingState: the walk consumed the whole sequence but ended in
//     a non-accepting state.
//
// Play resets the player's bookkeeping on entry, so a single player can
// replay any number of sequences; the diagnostics of one call stay readable
// until the next.
func (p *Player[S, A]) Play(seq []A) Result {
	p.reset()
	for _, a := range seq {
		if !p.replaySymbol(a) {
			p.logger.Debug("replay stopped, no transition",
				"state", p.current, "symbol", a, "pos", p.pos)
			return NoTransition
		}
	}

	if !p.dfa.HasAcceptingState(p.current) {
		p.logger.Debug("replay ended in non-accepting state", "state", p.current)
		return NonAcceptingState
	}

	return Ok
}

// CurrentState returns the state the player last stood in: after Play it is
// the final state of a complete walk, or the last state successfully
// entered before a NoTransition stop.
func (p *Player[S, A]) CurrentState() S {
	return p.current
}

// Position returns the number of symbols successfully consumed by the last
// Play call, or -1 if Play has never run. A failed lookup does not count.
func (p *Player[S, A]) Position() int {
	return p.pos
}

// LastSymbol returns the most recent symbol considered by Play, including a
// symbol whose lookup failed. Meaningful only once Play has consumed at
// least one symbol.
func (p *Player[S, A]) LastSymbol() A {
	return p.lastSym
}

// reset prepares the player for a fresh walk and gives the observer its
// initialization signal before any symbol is consumed.
func (p *Player[S, A]) reset() {
	p.current = p.dfa.InitialState()
	p.pos = 0

	if p.observer != nil {
		p.observer.OnStateChanging(p.current, p.current)
	}
}

// replaySymbol consumes one symbol. It reports false when the current state
// has no transition for a, leaving current and pos untouched.
func (p *Player[S, A]) replaySymbol(a A) bool {
	p.lastSym = a

	next, ok := p.dfa.Transition(p.current, a)
	if !ok {
		return false
	}

	// Notify before committing, so the observer sees the pre-update state
	// as the source.
	if p.observer != nil {
		p.observer.OnTransitionFired(p.current, a, next)
	}

	p.current = next
	p.pos++

	return true
}
