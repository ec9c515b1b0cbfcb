package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a nondeterministic automaton and all its states and transitions. States are
// integers handed out by AddState in creation order, each registered under a unique name. Mark a state as
// accepting when it is added, choose the initial state with SetStart and add transitions with
// AddTransition. A (state, label) pair may lead to any number of destinations; destinations are kept as
// a set so the same edge added twice is stored once. Once Finish has been called the automaton is frozen
// and every further mutation fails.
type Automaton struct {
	// State names, indexed by state.
	names []string

	// Maps a state name back to its index.
	index map[string]int

	isAccept *bitset.BitSet

	// For each state, label to destination set.
	transitions []map[rune]*bitset.BitSet

	numTransitions int

	// Initial state, or -1 until SetStart is called.
	start int

	// True if no state has two transitions leaving with the same label.
	deterministic bool

	frozen bool
}

func NewAutomaton() *Automaton {
	return NewAutomatonV1(2)
}

func NewAutomatonV1(numStates int) *Automaton {
	return &Automaton{
		names:         make([]string, 0, numStates),
		index:         make(map[string]int, numStates),
		isAccept:      bitset.New(uint(numStates)),
		transitions:   make([]map[rune]*bitset.BitSet, 0, numStates),
		start:         -1,
		deterministic: true,
	}
}

// AddState Create a new state registered under name and return its index.
func (a *Automaton) AddState(name string, accept bool) (int, error) {
	if a.frozen {
		return -1, fmt.Errorf("add state %q: %w", name, ErrFrozen)
	}
	if _, ok := a.index[name]; ok {
		return -1, fmt.Errorf("add state %q: %w", name, ErrDuplicateState)
	}

	state := len(a.names)
	a.names = append(a.names, name)
	a.transitions = append(a.transitions, nil)
	a.index[name] = state
	a.isAccept.SetTo(uint(state), accept)
	return state, nil
}

// SetStart Designate the named state as the initial state, replacing any previous one.
func (a *Automaton) SetStart(name string) error {
	state, err := a.lookup(name)
	if err != nil {
		return fmt.Errorf("set start: %w", err)
	}
	return a.SetStartState(state)
}

// SetStartState Same as SetStart but addresses the state by index.
func (a *Automaton) SetStartState(state int) error {
	if a.frozen {
		return fmt.Errorf("set start: %w", ErrFrozen)
	}
	if !a.valid(state) {
		return fmt.Errorf("set start (%d): %w", state, ErrInvalidState)
	}
	a.start = state
	return nil
}

// AddTransition Add a transition from the named source to the named dest on label. Calling it again for
// the same source and label adds another destination instead of replacing the first one.
func (a *Automaton) AddTransition(from string, label rune, to string) error {
	source, err := a.lookup(from)
	if err != nil {
		return fmt.Errorf("add transition: %w", err)
	}
	dest, err := a.lookup(to)
	if err != nil {
		return fmt.Errorf("add transition: %w", err)
	}
	return a.AddTransitionLabel(source, dest, label)
}

// AddTransitionLabel Add a new transition with the specified source, dest and label.
func (a *Automaton) AddTransitionLabel(source, dest int, label rune) error {
	if a.frozen {
		return fmt.Errorf("add transition: %w", ErrFrozen)
	}
	if !a.valid(source) {
		return fmt.Errorf("from state (%d): %w", source, ErrInvalidState)
	}
	if !a.valid(dest) {
		return fmt.Errorf("to state (%d): %w", dest, ErrInvalidState)
	}

	trans := a.transitions[source]
	if trans == nil {
		trans = make(map[rune]*bitset.BitSet)
		a.transitions[source] = trans
	}
	dests, ok := trans[label]
	if !ok {
		dests = bitset.New(uint(a.GetNumStates()))
		trans[label] = dests
	}
	if dests.Test(uint(dest)) {
		return nil
	}
	dests.Set(uint(dest))
	a.numTransitions++

	if dests.Count() > 1 {
		a.deterministic = false
	}
	return nil
}

// Finish Freezes the automaton. It fails if no initial state was chosen.
func (a *Automaton) Finish() error {
	if a.start == -1 {
		return ErrNoStartState
	}
	a.frozen = true
	return nil
}

// IsFrozen Returns true once Finish succeeded.
func (a *Automaton) IsFrozen() bool {
	return a.frozen
}

// IsDeterministic Returns true if this automaton is deterministic (for every state there is at most one
// destination for each label).
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.names)
}

// GetNumTransitions How many (source, label, dest) edges this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return a.numTransitions
}

// GetNumTransitionsWithState How many edges leave this state.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	if !a.valid(state) {
		return 0
	}
	count := 0
	for _, dests := range a.transitions[state] {
		count += int(dests.Count())
	}
	return count
}

// Start Returns the initial state, or -1 if none has been set.
func (a *Automaton) Start() int {
	return a.start
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// StateName Returns the name the state was registered under.
func (a *Automaton) StateName(state int) string {
	if !a.valid(state) {
		return ""
	}
	return a.names[state]
}

// State Returns the index of the named state.
func (a *Automaton) State(name string) (int, bool) {
	state, ok := a.index[name]
	return state, ok
}

// Labels Returns the sorted labels that have at least one transition leaving state.
func (a *Automaton) Labels(state int) []rune {
	if !a.valid(state) {
		return nil
	}
	labels := make([]rune, 0, len(a.transitions[state]))
	for label := range a.transitions[state] {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// HasTransition Returns true if state has at least one transition on label.
func (a *Automaton) HasTransition(state int, label rune) bool {
	if !a.valid(state) {
		return false
	}
	_, ok := a.transitions[state][label]
	return ok
}

// Dests Returns the sorted destinations reached from state on label.
func (a *Automaton) Dests(state int, label rune) []int {
	if !a.valid(state) {
		return nil
	}
	dests, ok := a.transitions[state][label]
	if !ok {
		return nil
	}
	out := make([]int, 0, dests.Count())
	for i, ok := dests.NextSet(0); ok; i, ok = dests.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	return a.isAccept
}

func (a *Automaton) lookup(name string) (int, error) {
	state, ok := a.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownState)
	}
	return state, nil
}

func (a *Automaton) valid(state int) bool {
	return state >= 0 && state < len(a.names)
}
