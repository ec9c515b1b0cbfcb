package automaton

import "errors"

var (
	// ErrDuplicateState is returned when a state name is registered twice.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrUnknownState is returned when a state name is not registered.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidState is returned for a state index outside the automaton.
	ErrInvalidState = errors.New("invalid state")

	// ErrNoStartState is returned when an automaton is finished without a start state.
	ErrNoStartState = errors.New("no start state")

	// ErrFrozen is returned when a finished automaton is mutated.
	ErrFrozen = errors.New("automaton is frozen")

	// ErrInvalidPosition is returned for a position other than front, last or anywhere.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidSymbol is returned when a string holds a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrEmptyAlphabet is returned when an alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")
)
