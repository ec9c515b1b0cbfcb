package automaton

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DefaultSymbols are the symbols patterns and inputs are written over unless configured otherwise.
const DefaultSymbols = "01abc"

// DefaultAlphabet is the alphabet built from DefaultSymbols.
var DefaultAlphabet = MustAlphabet(DefaultSymbols)

// Alphabet is the finite symbol set the catch-all self-loops of the last and anywhere constructions
// are generated over.
type Alphabet struct {
	symbols []rune
	members *bitset.BitSet
}

// NewAlphabet Returns the alphabet holding every distinct rune of symbols, in first-seen order.
func NewAlphabet(symbols string) (*Alphabet, error) {
	al := &Alphabet{
		members: bitset.New(0),
	}
	for _, r := range symbols {
		if al.members.Test(uint(r)) {
			continue
		}
		al.members.Set(uint(r))
		al.symbols = append(al.symbols, r)
	}
	if len(al.symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return al, nil
}

func MustAlphabet(symbols string) *Alphabet {
	al, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return al
}

func (al *Alphabet) Contains(r rune) bool {
	return r >= 0 && al.members.Test(uint(r))
}

// Symbols Returns a copy of the symbols.
func (al *Alphabet) Symbols() []rune {
	out := make([]rune, len(al.symbols))
	copy(out, al.symbols)
	return out
}

func (al *Alphabet) Size() int {
	return len(al.symbols)
}

func (al *Alphabet) String() string {
	return string(al.symbols)
}

// Validate Returns an ErrInvalidSymbol error naming the first rune of s outside the alphabet.
func (al *Alphabet) Validate(s string) error {
	for i, r := range s {
		if !al.Contains(r) {
			return fmt.Errorf("%w %q at offset %d, allowed symbols are %s",
				ErrInvalidSymbol, r, i, al.quoted())
		}
	}
	return nil
}

func (al *Alphabet) quoted() string {
	parts := make([]string, len(al.symbols))
	for i, r := range al.symbols {
		parts[i] = fmt.Sprintf("'%c'", r)
	}
	return strings.Join(parts, ", ")
}
