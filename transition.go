package dfa

// Transition is one row of a transition table: reading Sym while in Src
// moves the automaton to Dst.
type Transition[S, A comparable] struct {
	Src S // Source state
	Sym A // Symbol labeling the transition
	Dst S // Destination state
}

// transKey identifies a single cell of the transition table. At most one
// destination exists per key, which is what makes the automaton deterministic.
type transKey[S, A comparable] struct {
	src S
	sym A
}
