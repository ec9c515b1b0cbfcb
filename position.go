package automaton

import "fmt"

// Position says where in the input the pattern has to occur.
type Position int

const (
	Front    = Position(iota) // The input is exactly the pattern
	Last                      // The input ends with the pattern
	Anywhere                  // The input contains the pattern
)

// ParsePosition Returns the position named by one of the keywords front, last or anywhere.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "front":
		return Front, nil
	case "last":
		return Last, nil
	case "anywhere":
		return Anywhere, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

func (p Position) String() string {
	switch p {
	case Front:
		return "front"
	case Last:
		return "last"
	case Anywhere:
		return "anywhere"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

func (p Position) valid() bool {
	switch p {
	case Front, Last, Anywhere:
		return true
	default:
		return false
	}
}

func (p Position) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	v, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
