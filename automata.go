package automaton

import (
	"fmt"

	"gopkg.in/op/go-logging.v1"
)

var defaultAutomata = NewAutomata()

// Automata builds substring automata over a fixed alphabet.
type Automata struct {
	alphabet *Alphabet
	log      *logging.Logger
}

type optionsAutomata struct {
	alphabet *Alphabet
	log      *logging.Logger
}

type OptionsAutomata func(*optionsAutomata)

// WithAlphabet sets the alphabet the self-loops are generated over. Default: DefaultAlphabet.
func WithAlphabet(alphabet *Alphabet) OptionsAutomata {
	return func(o *optionsAutomata) {
		o.alphabet = alphabet
	}
}

// WithLogger makes construction log at DEBUG level.
func WithLogger(log *logging.Logger) OptionsAutomata {
	return func(o *optionsAutomata) {
		o.log = log
	}
}

func NewAutomata(opts ...OptionsAutomata) *Automata {
	o := &optionsAutomata{
		alphabet: DefaultAlphabet,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Automata{
		alphabet: o.alphabet,
		log:      o.log,
	}
}

// Alphabet Returns the alphabet this factory builds over.
func (m *Automata) Alphabet() *Alphabet {
	return m.alphabet
}

// MakeEmpty
// Returns a new automaton with the empty language.
func (m *Automata) MakeEmpty() (*Automaton, error) {
	a := NewAutomatonV1(1)
	if _, err := a.AddState(stateName(0), false); err != nil {
		return nil, err
	}
	return m.finish(a, 0)
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (m *Automata) MakeEmptyString() (*Automaton, error) {
	return m.MakeString("")
}

// MakeAnyString
// Returns a new automaton that accepts all strings over the alphabet.
func (m *Automata) MakeAnyString() (*Automaton, error) {
	a := NewAutomatonV1(1)
	s, err := a.AddState(stateName(0), true)
	if err != nil {
		return nil, err
	}
	for _, c := range m.alphabet.symbols {
		if err := a.AddTransitionLabel(s, s, c); err != nil {
			return nil, err
		}
	}
	return m.finish(a, s)
}

// MakeString
// Returns a new automaton that accepts exactly pattern.
func (m *Automata) MakeString(pattern string) (*Automaton, error) {
	a, err := m.spine([]rune(pattern))
	if err != nil {
		return nil, err
	}
	return m.finish(a, 0)
}

// MakeSuffix
// Returns a new automaton that accepts every string ending with pattern. Only the initial state loops,
// so the automaton guesses where the pattern starts and the spine has to run through to the end of the
// input from there.
func (m *Automata) MakeSuffix(pattern string) (*Automaton, error) {
	a, err := m.spine([]rune(pattern))
	if err != nil {
		return nil, err
	}
	for _, c := range m.alphabet.symbols {
		if err := a.AddTransitionLabel(0, 0, c); err != nil {
			return nil, err
		}
	}
	return m.finish(a, 0)
}

// MakeSubstring
// Returns a new automaton that accepts every string containing pattern. The initial state loops on every
// symbol while it guesses where the pattern starts, and the accept state loops on every symbol once the
// pattern has been seen, so the spine in between has to match a contiguous run of the input.
func (m *Automata) MakeSubstring(pattern string) (*Automaton, error) {
	a, err := m.spine([]rune(pattern))
	if err != nil {
		return nil, err
	}
	last := a.GetNumStates() - 1
	for _, c := range m.alphabet.symbols {
		if err := a.AddTransitionLabel(0, 0, c); err != nil {
			return nil, err
		}
		if err := a.AddTransitionLabel(last, last, c); err != nil {
			return nil, err
		}
	}
	return m.finish(a, 0)
}

// MakeSubsequence
// Returns a new automaton that accepts every string containing the symbols of pattern in order, not
// necessarily next to each other. Each state loops on every symbol it has no spine edge for, so a symbol
// that does not advance the match never loses progress already made. Compile never returns it; the
// anywhere position uses MakeSubstring.
func (m *Automata) MakeSubsequence(pattern string) (*Automaton, error) {
	a, err := m.spine([]rune(pattern))
	if err != nil {
		return nil, err
	}
	for s := 0; s < a.GetNumStates(); s++ {
		for _, c := range m.alphabet.symbols {
			if a.HasTransition(s, c) {
				continue
			}
			if err := a.AddTransitionLabel(s, s, c); err != nil {
				return nil, err
			}
		}
	}
	return m.finish(a, 0)
}

// Compile
// Returns the automaton accepting the strings that hold pattern at position.
func (m *Automata) Compile(pattern string, position Position) (*Automaton, error) {
	var (
		a   *Automaton
		err error
	)
	switch position {
	case Front:
		if pattern == "" {
			// The empty pattern is at the front of every string.
			a, err = m.MakeAnyString()
		} else {
			a, err = m.MakeString(pattern)
		}
	case Last:
		a, err = m.MakeSuffix(pattern)
	case Anywhere:
		a, err = m.MakeSubstring(pattern)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, position)
	}
	if err != nil {
		return nil, fmt.Errorf("compile %q at %v: %w", pattern, position, err)
	}

	if m.log != nil {
		m.log.Debugf("compiled %q at %v: %d states, %d transitions, deterministic=%v",
			pattern, position, a.GetNumStates(), a.GetNumTransitions(), a.IsDeterministic())
	}
	return a, nil
}

// Compile builds the automaton for pattern at the position named by one of front, last or anywhere,
// over DefaultAlphabet.
func Compile(pattern, position string) (*Automaton, error) {
	p, err := ParsePosition(position)
	if err != nil {
		return nil, err
	}
	return defaultAutomata.Compile(pattern, p)
}

// Creates q0 ... qL with qL accepting and q0 initial, and the chain qi --pattern[i]--> q(i+1).
func (m *Automata) spine(pattern []rune) (*Automaton, error) {
	a := NewAutomatonV1(len(pattern) + 1)
	for i := 0; i <= len(pattern); i++ {
		if _, err := a.AddState(stateName(i), i == len(pattern)); err != nil {
			return nil, err
		}
	}
	for i, c := range pattern {
		if err := a.AddTransitionLabel(i, i+1, c); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (m *Automata) finish(a *Automaton, start int) (*Automaton, error) {
	if err := a.SetStartState(start); err != nil {
		return nil, err
	}
	if err := a.Finish(); err != nil {
		return nil, err
	}
	return a, nil
}

func stateName(i int) string {
	return fmt.Sprintf("q%d", i)
}
