package automaton

// Run Returns true if the automaton accepts s. All states reachable by the consumed prefix are tracked
// at once, so the result does not depend on the order in which nondeterministic choices are explored.
// Symbols without a transition simply contribute no states; an input symbol outside the alphabet the
// automaton was built over is therefore a rejection, never an error.
func Run(a *Automaton, s string) bool {
	if a.start == -1 {
		return false
	}

	current := NewStateSet(a.GetNumStates())
	next := NewStateSet(a.GetNumStates())
	current.Add(a.start)

	for _, v := range s {
		a.step(current, v, next)
		if next.IsEmpty() {
			// No continuation can reach an accept state.
			return false
		}
		current, next = next, current
		next.Clear()
	}
	return current.intersects(a.getAcceptStates())
}

// Accepts is the method form of Run.
func (a *Automaton) Accepts(s string) bool {
	return Run(a, s)
}

// Initial Returns the state set before any input is consumed.
func (a *Automaton) Initial() *StateSet {
	set := NewStateSet(a.GetNumStates())
	if a.start != -1 {
		set.Add(a.start)
	}
	return set
}

// Step Returns the states reached from any state in active on label. active is not modified.
func (a *Automaton) Step(active *StateSet, label rune) *StateSet {
	next := NewStateSet(a.GetNumStates())
	a.step(active, label, next)
	return next
}

// IsAcceptSet Returns true if at least one state in active is an accept state.
func (a *Automaton) IsAcceptSet(active *StateSet) bool {
	return active.intersects(a.getAcceptStates())
}

func (a *Automaton) step(active *StateSet, label rune, next *StateSet) {
	for i, ok := active.inner.NextSet(0); ok; i, ok = active.inner.NextSet(i + 1) {
		if dests, ok := a.transitions[i][label]; ok {
			next.union(dests)
		}
	}
}
