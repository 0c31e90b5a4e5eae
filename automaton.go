package dfa

// Automaton is a deterministic finite automaton defined by an explicit
// transition table. It is generic over the state type S and the symbol
// (alphabet element) type A; both should be cheap to copy.
//
// An Automaton is built incrementally through the Add/Set methods (or in one
// shot via NewFromTable) and must not be mutated while a Player bound to it
// is replaying. Once built it is safe for concurrent reads, so any number of
// independent Players may share one Automaton.
type Automaton[S, A comparable] struct {
	states    map[S]struct{}
	alphabet  map[A]struct{}
	table     map[transKey[S, A]]S
	accepting map[S]struct{}

	// The zero value of S is a legal state, so "no initial state yet" needs
	// its own flag rather than a sentinel.
	initial    S
	hasInitial bool
}

// New creates an empty automaton with no states, symbols, or transitions.
func New[S, A comparable]() *Automaton[S, A] {
	return &Automaton[S, A]{
		states:    make(map[S]struct{}),
		alphabet:  make(map[A]struct{}),
		table:     make(map[transKey[S, A]]S),
		accepting: make(map[S]struct{}),
	}
}

// NewFromTable creates an automaton from a full description: an initial
// state, a transition table, and the accepting states. Every state and
// symbol referenced by a transition is registered automatically.
//
// Transitions are applied first, then the initial state, then the accepting
// states. The explicit initial state therefore always wins over the
// first-added-state default, regardless of the order of the transitions.
func NewFromTable[S, A comparable](initial S, transitions []Transition[S, A], accepting []S) *Automaton[S, A] {
	d := New[S, A]()
	for _, t := range transitions {
		d.AddTransition(t.Src, t.Sym, t.Dst)
	}
	d.SetInitialState(initial)
	for _, s := range accepting {
		d.AddAcceptingState(s)
	}
	return d
}

// AddState registers a state. The first state ever registered becomes the
// initial state until SetInitialState overrides it. Adding a state twice is
// a no-op. Returns s.
func (d *Automaton[S, A]) AddState(s S) S {
	if !d.hasInitial {
		d.initial = s
		d.hasInitial = true
	}
	d.states[s] = struct{}{}
	return s
}

// AddSymbol registers a symbol in the alphabet. Idempotent. Returns a.
func (d *Automaton[S, A]) AddSymbol(a A) A {
	d.alphabet[a] = struct{}{}
	return a
}

// AddTransition records that reading a in state s moves the automaton to
// dst. The states s and dst and the symbol a are registered if they were not
// already. If a transition for (s, a) already exists it is replaced - the
// table stays deterministic by construction, with the last write winning.
func (d *Automaton[S, A]) AddTransition(s S, a A, dst S) {
	d.AddState(s)
	d.AddState(dst)
	d.AddSymbol(a)

	d.table[transKey[S, A]{src: s, sym: a}] = dst
}

// AddAcceptingState marks s as accepting, registering it as a state if
// needed. Returns s.
func (d *Automaton[S, A]) AddAcceptingState(s S) S {
	d.AddState(s)
	d.accepting[s] = struct{}{}
	return s
}

// SetInitialState makes s the initial state, registering it if needed.
// Returns s.
func (d *Automaton[S, A]) SetInitialState(s S) S {
	d.AddState(s)
	d.initial = s
	return s
}

// InitialState returns the initial state. On an automaton with no states it
// returns the zero value of S.
func (d *Automaton[S, A]) InitialState() S {
	return d.initial
}

// NumStates returns the number of registered states.
func (d *Automaton[S, A]) NumStates() int {
	return len(d.states)
}

// NumSymbols returns the size of the alphabet.
func (d *Automaton[S, A]) NumSymbols() int {
	return len(d.alphabet)
}

// NumTransitions returns the number of entries in the transition table.
func (d *Automaton[S, A]) NumTransitions() int {
	return len(d.table)
}

// NumAcceptingStates returns the number of accepting states.
func (d *Automaton[S, A]) NumAcceptingStates() int {
	return len(d.accepting)
}

// Transition looks up the destination for reading a in state s. The second
// return value reports whether such a transition is defined; a missing
// transition is a normal condition, not an error.
func (d *Automaton[S, A]) Transition(s S, a A) (S, bool) {
	dst, ok := d.table[transKey[S, A]{src: s, sym: a}]
	return dst, ok
}

// HasState reports whether s is a registered state.
func (d *Automaton[S, A]) HasState(s S) bool {
	_, ok := d.states[s]
	return ok
}

// HasSymbol reports whether a belongs to the alphabet.
func (d *Automaton[S, A]) HasSymbol(a A) bool {
	_, ok := d.alphabet[a]
	return ok
}

// HasAcceptingState reports whether s is an accepting state.
func (d *Automaton[S, A]) HasAcceptingState(s S) bool {
	_, ok := d.accepting[s]
	return ok
}

// Accepts reports whether seq belongs to the language of the automaton.
// It is shorthand for replaying seq on a fresh Player and comparing the
// result against Ok; use a Player directly when the failure diagnostics
// matter.
func (d *Automaton[S, A]) Accepts(seq []A) bool {
	return NewPlayer(d).Play(seq) == Ok
}
