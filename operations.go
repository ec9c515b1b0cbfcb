package automaton

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.GetNumStates() == 0 || a.Start() == -1 {
		// Common case: no states
		return true
	}
	if a.IsAccept(a.Start()) {
		// Apparently common case: it accepts the empty string
		return false
	}

	reachable := getLiveStatesFromInitial(a)
	return reachable.IntersectionCardinality(a.getAcceptStates()) == 0
}

// LiveStates
// Returns the states that are reachable from the initial state and from which an accept state can be
// reached. Every state of a compiled substring automaton is live.
func LiveStates(a *Automaton) []int {
	live := getLiveStates(a)
	out := make([]int, 0, live.Count())
	for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func getLiveStates(a *Automaton) *bitset.BitSet {
	live := getLiveStatesFromInitial(a)
	live.InPlaceIntersection(getLiveStatesToAccept(a))
	return live
}

func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 || a.Start() == -1 {
		return live
	}
	workList := make([]int, 0, numStates)
	live.Set(uint(a.Start()))
	workList = append(workList, a.Start())

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dests := range a.transitions[s] {
			for d, ok := dests.NextSet(0); ok; d, ok = dests.NextSet(d + 1) {
				if !live.Test(d) {
					live.Set(d)
					workList = append(workList, int(d))
				}
			}
		}
	}

	return live
}

// Walks the reversed edges backwards from every accept state.
func getLiveStatesToAccept(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()

	// Reverse all edges
	reversed := make([][]int, numStates)
	for s := 0; s < numStates; s++ {
		for _, dests := range a.transitions[s] {
			for d, ok := dests.NextSet(0); ok; d, ok = dests.NextSet(d + 1) {
				reversed[d] = append(reversed[d], s)
			}
		}
	}

	live := bitset.New(uint(numStates))
	workList := make([]int, 0, numStates)
	for s, ok := a.getAcceptStates().NextSet(0); ok && int(s) < numStates; s, ok = a.getAcceptStates().NextSet(s + 1) {
		live.Set(s)
		workList = append(workList, int(s))
	}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, p := range reversed[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				workList = append(workList, p)
			}
		}
	}
	return live
}

// ToDot
// Returns the automaton in Graphviz dot format. Labels leading to the same destination are merged onto
// one edge.
func (a *Automaton) ToDot() string {
	b := new(bytes.Buffer)
	b.WriteString("digraph Automaton {\n")
	b.WriteString("  rankdir = LR\n")
	b.WriteString("  node [width=0.2, height=0.2, fontsize=8]\n")
	if a.start != -1 {
		b.WriteString("  initial [shape=plaintext,label=\"\"]\n")
		fmt.Fprintf(b, "  initial -> %d\n", a.start)
	}

	for s := 0; s < a.GetNumStates(); s++ {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(b, "  %d [shape=%s,label=%s]\n", s, shape, strconv.Quote(a.names[s]))

		// Group labels by destination so parallel edges collapse.
		byDest := make(map[int][]rune)
		var order []int
		for _, label := range a.Labels(s) {
			for _, d := range a.Dests(s, label) {
				if _, ok := byDest[d]; !ok {
					order = append(order, d)
				}
				byDest[d] = append(byDest[d], label)
			}
		}
		for _, d := range order {
			fmt.Fprintf(b, "  %d -> %d [label=%s]\n", s, d, strconv.Quote(string(byDest[d])))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// String returns a compact description of the automaton.
func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton{states=%d, transitions=%d, start=%d, deterministic=%v}",
		a.GetNumStates(), a.GetNumTransitions(), a.start, a.deterministic)
}
