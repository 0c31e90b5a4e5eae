package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContains01 builds the automaton over {'0','1'} that accepts every
// binary string containing "01" as a substring.
func newContains01() *Automaton[int, byte] {
	return NewFromTable(0,
		[]Transition[int, byte]{
			{0, '1', 0}, {0, '0', 1},
			{1, '0', 1}, {1, '1', 2},
			{2, '0', 2}, {2, '1', 2},
		},
		[]int{2},
	)
}

func TestAutomaton_Empty(t *testing.T) {
	d := New[int, byte]()

	assert.Equal(t, 0, d.NumStates())
	assert.Equal(t, 0, d.NumSymbols())
	assert.Equal(t, 0, d.NumTransitions())
	assert.Equal(t, 0, d.NumAcceptingStates())
}

func TestAutomaton_FromTable(t *testing.T) {
	d := newContains01()

	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, 2, d.NumSymbols())
	assert.Equal(t, 6, d.NumTransitions())
	assert.Equal(t, 1, d.NumAcceptingStates())
	assert.Equal(t, 0, d.InitialState())

	dst, ok := d.Transition(0, '1')
	require.True(t, ok)
	assert.Equal(t, 0, dst)

	dst, ok = d.Transition(2, '0')
	require.True(t, ok)
	assert.Equal(t, 2, dst)

	_, ok = d.Transition(0, 'x')
	assert.False(t, ok)
}

func TestAutomaton_TransitionAutoRegisters(t *testing.T) {
	d := New[string, rune]()
	d.AddTransition("idle", 'g', "running")

	assert.True(t, d.HasState("idle"))
	assert.True(t, d.HasState("running"))
	assert.True(t, d.HasSymbol('g'))
	assert.Equal(t, 2, d.NumStates())
	assert.Equal(t, 1, d.NumSymbols())
	assert.Equal(t, 1, d.NumTransitions())
}

func TestAutomaton_LastWriteWins(t *testing.T) {
	d := New[int, byte]()
	d.AddTransition(0, 'a', 1)
	d.AddTransition(0, 'a', 1) // idempotent
	require.Equal(t, 1, d.NumTransitions())

	d.AddTransition(0, 'a', 2) // replaces the mapping
	assert.Equal(t, 1, d.NumTransitions())

	dst, ok := d.Transition(0, 'a')
	require.True(t, ok)
	assert.Equal(t, 2, dst)
}

func TestAutomaton_FirstStateIsDefaultInitial(t *testing.T) {
	d := New[string, byte]()
	d.AddState("start")
	d.AddState("other")

	assert.Equal(t, "start", d.InitialState())
}

func TestAutomaton_SetInitialStateOverrides(t *testing.T) {
	d := New[string, byte]()
	d.AddState("start")
	d.SetInitialState("real-start")

	assert.Equal(t, "real-start", d.InitialState())
	assert.True(t, d.HasState("real-start"))
}

func TestAutomaton_FromTableInitialOverride(t *testing.T) {
	// The requested initial state is not the first one encountered while
	// scanning the transitions; the explicit choice must still win.
	d := NewFromTable(7,
		[]Transition[int, byte]{
			{0, 'a', 1},
			{1, 'b', 7},
		},
		[]int{7},
	)

	assert.Equal(t, 7, d.InitialState())
	assert.Equal(t, 3, d.NumStates())
}

func TestAutomaton_AcceptingStateRegisters(t *testing.T) {
	d := New[int, byte]()
	d.AddAcceptingState(9)

	assert.True(t, d.HasState(9))
	assert.True(t, d.HasAcceptingState(9))
	assert.False(t, d.HasAcceptingState(0))

	// first mutating call touched state 9, so it became the default initial
	assert.Equal(t, 9, d.InitialState())
}

func TestAutomaton_IdempotentAdds(t *testing.T) {
	d := New[int, byte]()
	d.AddState(1)
	d.AddState(1)
	d.AddSymbol('a')
	d.AddSymbol('a')
	d.AddAcceptingState(1)
	d.AddAcceptingState(1)

	assert.Equal(t, 1, d.NumStates())
	assert.Equal(t, 1, d.NumSymbols())
	assert.Equal(t, 1, d.NumAcceptingStates())
}

func TestAutomaton_Accepts(t *testing.T) {
	d := newContains01()

	assert.True(t, d.Accepts([]byte("01")))
	assert.True(t, d.Accepts([]byte("1010")))
	assert.False(t, d.Accepts([]byte("100")))
	assert.False(t, d.Accepts([]byte("1x")))
	assert.False(t, d.Accepts(nil))
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "no transition", NoTransition.String())
	assert.Equal(t, "non-accepting state", NonAcceptingState.String())
	assert.Equal(t, "unknown", Result(42).String())
}
