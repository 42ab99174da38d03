package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeLeftToRightAutoAdvance(t *testing.T) {
	for _, n := range []int{1, 3, 4, 6} {
		s := New(n)
		for k := 0; k < n; k++ {
			assert.Equal(t, k, s.Focus(), "n=%d before keystroke %d", n, k)
			s.Input(s.Focus(), "7")
			if k < n-1 {
				assert.Equal(t, k+1, s.Focus(), "n=%d after keystroke %d", n, k)
			}
		}
		// Last slot filled: focus stays on the last slot.
		assert.Equal(t, n-1, s.Focus(), "n=%d final focus", n)
	}
}

func TestBackspaceOnEmptySlotMergesBackwards(t *testing.T) {
	s := New(4)
	s.Input(0, "1")
	s.Input(1, "2")
	// Focus is now slot 2, which is empty.
	require.Equal(t, 2, s.Focus())
	s.KeyDown(2, KeyBackspace)
	assert.Equal(t, 1, s.Focus())
	assert.Equal(t, "", s.Field(1))
	assert.Equal(t, "1", s.Field(0))

	s.KeyDown(1, KeyBackspace)
	assert.Equal(t, 0, s.Focus())
	assert.Equal(t, "", s.Field(0))

	// First slot, empty: no-op.
	s.KeyDown(0, KeyBackspace)
	assert.Equal(t, 0, s.Focus())
}

func TestDeleteClearsNonEmptySlotInPlace(t *testing.T) {
	for _, key := range []Key{KeyBackspace, KeyDelete} {
		s := New(4)
		s.Input(0, "1")
		s.Input(1, "2")
		s.KeyDown(1, key)
		assert.Equal(t, "", s.Field(1), "key=%s", key)
		assert.Equal(t, 1, s.Focus(), "key=%s focus unchanged", key)
		assert.Equal(t, "1", s.Field(0), "key=%s neighbor untouched", key)
	}
}

func TestArrowKeysStayInBounds(t *testing.T) {
	s := New(3)
	s.KeyDown(0, KeyArrowLeft)
	assert.Equal(t, 0, s.Focus())
	s.KeyDown(0, KeyArrowRight)
	assert.Equal(t, 1, s.Focus())
	s.KeyDown(1, KeyArrowRight)
	assert.Equal(t, 2, s.Focus())
	s.KeyDown(2, KeyArrowRight)
	assert.Equal(t, 2, s.Focus())
	s.KeyDown(2, KeyArrowLeft)
	assert.Equal(t, 1, s.Focus())
}

func TestTwoCharacterResolution(t *testing.T) {
	cases := []struct {
		name string
		prev string
		raw  string
		want string
	}{
		// New character typed after the old one: old value trails in front.
		{"typed at end", "3", "34", "4"},
		// New character typed before the old one: old value trails behind.
		{"typed at start", "3", "43", "4"},
		// Neither character matches the shadow value: keep the last typed.
		{"no match fallback", "3", "56", "6"},
		{"identical pair", "3", "33", "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(2)
			s.Input(0, c.prev)
			s.Input(0, c.raw)
			got := s.Field(0)
			assert.Equal(t, c.want, got)
			assert.Len(t, got, 1, "slot never rests with more than one character")
		})
	}
}

func TestResolutionUpdatesShadowValue(t *testing.T) {
	s := New(2)
	s.Input(0, "3")
	s.Input(0, "34") // resolves to "4"; shadow must now be "4"
	s.Input(0, "45") // last!=prev("4")? "5"!= "4"; first "4"==prev -> keep last
	assert.Equal(t, "5", s.Field(0))
}

func TestResolutionAdvancesFocus(t *testing.T) {
	s := New(3)
	s.Input(0, "3")
	s.KeyDown(1, KeyArrowLeft) // focus back to 0
	s.Input(0, "34")
	assert.Equal(t, "4", s.Field(0))
	assert.Equal(t, 1, s.Focus())
}

func TestEmptyInputKeepsFocus(t *testing.T) {
	s := New(3)
	s.Input(0, "9")
	s.Input(1, "")
	assert.Equal(t, 1, s.Focus())
	assert.Equal(t, "", s.Field(1))
}

func TestGuessAndComplete(t *testing.T) {
	s := New(4)
	assert.False(t, s.Complete())
	for i, d := range []string{"1", "2", "3", "4"} {
		s.Input(i, d)
	}
	assert.Equal(t, "1234", s.Guess())
	assert.True(t, s.Complete())
	assert.Equal(t, []string{"1", "2", "3", "4"}, s.Fields())

	s.KeyDown(2, KeyBackspace)
	assert.False(t, s.Complete())
}

// End-to-end: type 1,2,3,4 with auto-advance; the concatenated guess equals
// the target number exactly.
func TestEndToEndFourDigits(t *testing.T) {
	s := New(4)
	for _, d := range []string{"1", "2", "3", "4"} {
		s.Input(s.Focus(), d)
	}
	require.Equal(t, []string{"1", "2", "3", "4"}, s.Fields())
	assert.Equal(t, "1234", s.Guess())
	assert.True(t, s.Guess() == "1234")
}

func TestOutOfRangeEventsAreNoOps(t *testing.T) {
	s := New(2)
	s.Input(-1, "5")
	s.Input(2, "5")
	s.KeyDown(-1, KeyBackspace)
	s.KeyDown(2, KeyArrowRight)
	assert.Equal(t, []string{"", ""}, s.Fields())
	assert.Equal(t, 0, s.Focus())
}
