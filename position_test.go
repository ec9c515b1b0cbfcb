package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"front", Front},
		{"last", Last},
		{"anywhere", Anywhere},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePosition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.in, p.String())
		})
	}

	for _, bad := range []string{"", "Front", "middle", "any"} {
		_, err := ParsePosition(bad)
		assert.ErrorIs(t, err, ErrInvalidPosition, bad)
	}
}

func TestPosition_Text(t *testing.T) {
	var p Position
	require.NoError(t, p.UnmarshalText([]byte("last")))
	assert.Equal(t, Last, p)

	b, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "last", string(b))

	assert.ErrorIs(t, p.UnmarshalText([]byte("first")), ErrInvalidPosition)
	assert.Equal(t, Last, p)

	_, err = Position(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Equal(t, "Position(9)", Position(9).String())
}

func TestPosition_Valid(t *testing.T) {
	for _, p := range []Position{Front, Last, Anywhere} {
		assert.True(t, p.valid(), p.String())
		back, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
	for _, p := range []Position{-1, 3, 9} {
		assert.False(t, p.valid())
	}
}
