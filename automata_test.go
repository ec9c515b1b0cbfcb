package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Scenarios(t *testing.T) {
	tests := []struct {
		pattern  string
		position string
		input    string
		want     bool
	}{
		{"01", "anywhere", "1011a", true},
		{"01", "front", "1011a", false},
		{"1a", "last", "001a", true},
		{"1a", "last", "1a0", false},
		{"01", "front", "01", true},
		{"01", "front", "010", false},
		{"abc", "anywhere", "cabcab", true},
		{"abc", "anywhere", "acbacb", false},
		{"aab", "anywhere", "aaab", true},
		{"aab", "last", "aaab", true},
		{"c", "last", "", false},
		{"c", "anywhere", "", false},
		{"01", "anywhere", "0a1", false},
		{"01", "anywhere", "a0011", true},
	}
	for _, tt := range tests {
		t.Run(tt.position+"/"+tt.pattern+"/"+tt.input, func(t *testing.T) {
			a, err := Compile(tt.pattern, tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Run(a, tt.input))
		})
	}
}

func TestCompile_InvalidPosition(t *testing.T) {
	a, err := Compile("01", "middle")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Nil(t, a)

	a, err = defaultAutomata.Compile("01", Position(42))
	assert.ErrorIs(t, err, ErrInvalidPosition)
	assert.Nil(t, a)
}

func TestCompile_Shape(t *testing.T) {
	t.Run("spine", func(t *testing.T) {
		for _, position := range []Position{Front, Last, Anywhere} {
			a, err := defaultAutomata.Compile("01a", position)
			require.NoError(t, err)
			assert.Equal(t, 4, a.GetNumStates())
			assert.Equal(t, 0, a.Start())
			assert.True(t, a.IsFrozen())
			for i := 0; i < 4; i++ {
				assert.Equal(t, stateName(i), a.StateName(i))
				assert.Equal(t, i == 3, a.IsAccept(i))
			}
			assert.Contains(t, a.Dests(0, '0'), 1)
			assert.Contains(t, a.Dests(1, '1'), 2)
			assert.Contains(t, a.Dests(2, 'a'), 3)
		}
	})

	t.Run("front adds nothing", func(t *testing.T) {
		a, err := defaultAutomata.Compile("01a", Front)
		require.NoError(t, err)
		assert.Equal(t, 3, a.GetNumTransitions())
		assert.True(t, a.IsDeterministic())
	})

	t.Run("last loops on q0 only", func(t *testing.T) {
		a, err := defaultAutomata.Compile("01a", Last)
		require.NoError(t, err)
		assert.Equal(t, 3+5, a.GetNumTransitions())
		assert.Equal(t, []int{0, 1}, a.Dests(0, '0'))
		assert.Equal(t, []int{0}, a.Dests(0, 'c'))
		assert.Equal(t, 1, a.GetNumTransitionsWithState(1))
		assert.False(t, a.IsDeterministic())
	})

	t.Run("anywhere loops on q0 and the accept state", func(t *testing.T) {
		a, err := defaultAutomata.Compile("01a", Anywhere)
		require.NoError(t, err)
		assert.Equal(t, 3+5+5, a.GetNumTransitions())
		assert.Equal(t, []int{0, 1}, a.Dests(0, '0'))
		assert.Equal(t, []int{0}, a.Dests(0, '1'))
		assert.Equal(t, []rune("1"), a.Labels(1))
		assert.Equal(t, []rune("a"), a.Labels(2))
		assert.Equal(t, []int{3}, a.Dests(3, 'b'))
		assert.Equal(t, []rune("01abc"), a.Labels(3))
		assert.False(t, a.IsDeterministic())
	})
}

func TestCompile_EmptyPattern(t *testing.T) {
	inputs := []string{"", "0", "1", "abc", "c10ba"}

	for _, position := range []string{"front", "anywhere"} {
		t.Run(position, func(t *testing.T) {
			a, err := Compile("", position)
			require.NoError(t, err)
			assert.Equal(t, 1, a.GetNumStates())
			assert.True(t, a.IsAccept(a.Start()))
			for _, in := range inputs {
				assert.Truef(t, Run(a, in), "input %q", in)
			}
		})
	}

	t.Run("last", func(t *testing.T) {
		a, err := Compile("", "last")
		require.NoError(t, err)
		for _, in := range inputs {
			assert.Truef(t, Run(a, in), "input %q", in)
		}
	})
}

func TestCompile_OutsideAlphabet(t *testing.T) {
	a, err := Compile("01", "anywhere")
	require.NoError(t, err)
	assert.False(t, Run(a, "0x1"))
	assert.False(t, Run(a, "01x"))
	assert.False(t, Run(a, "x01"))
	assert.True(t, Run(a, "c01b"))
}

func TestAutomata_WithAlphabet(t *testing.T) {
	al, err := NewAlphabet("xyz")
	require.NoError(t, err)
	automata := NewAutomata(WithAlphabet(al))
	assert.Equal(t, al, automata.Alphabet())

	a, err := automata.Compile("yz", Anywhere)
	require.NoError(t, err)
	assert.True(t, Run(a, "xxyzx"))
	assert.False(t, Run(a, "xxyx"))
	// '0' is not in the alphabet, so there is no loop for it
	assert.False(t, Run(a, "0yz"))

	a, err = automata.Compile("x", Last)
	require.NoError(t, err)
	assert.True(t, Run(a, "zyx"))
	assert.False(t, Run(a, "xz"))
}

func TestAutomata_Make(t *testing.T) {
	t.Run("MakeEmpty", func(t *testing.T) {
		a, err := defaultAutomata.MakeEmpty()
		require.NoError(t, err)
		assert.True(t, IsEmptyAutomaton(a))
		assert.False(t, Run(a, ""))
		assert.False(t, Run(a, "0"))
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		a, err := defaultAutomata.MakeAnyString()
		require.NoError(t, err)
		for _, in := range []string{"", "a", strings.Repeat("01abc", 20)} {
			assert.True(t, Run(a, in))
		}
	})

	t.Run("MakeString", func(t *testing.T) {
		a, err := defaultAutomata.MakeString("ab")
		require.NoError(t, err)
		assert.True(t, Run(a, "ab"))
		assert.False(t, Run(a, "a"))
		assert.False(t, Run(a, "abab"))
	})
}

func TestAutomata_MakeSubsequence(t *testing.T) {
	a, err := defaultAutomata.MakeSubsequence("01")
	require.NoError(t, err)
	for s := 0; s < a.GetNumStates(); s++ {
		assert.Equal(t, []rune("01abc"), a.Labels(s))
		assert.Equal(t, 5, a.GetNumTransitionsWithState(s))
	}
	assert.True(t, a.IsDeterministic())

	assert.True(t, Run(a, "01"))
	assert.True(t, Run(a, "0a1"))
	assert.True(t, Run(a, "b0cc1a"))
	assert.False(t, Run(a, "10"))
	assert.False(t, Run(a, ""))

	// the substring automaton rejects what only matches as a subsequence
	sub, err := defaultAutomata.MakeSubstring("01")
	require.NoError(t, err)
	assert.False(t, Run(sub, "0a1"))

	// and so does the anywhere position
	anywhere, err := Compile("01", "anywhere")
	require.NoError(t, err)
	assert.False(t, Run(anywhere, "0a1"))
	assert.Equal(t, sub.GetNumTransitions(), anywhere.GetNumTransitions())
	assert.NotEqual(t, a.GetNumTransitions(), anywhere.GetNumTransitions())
}
