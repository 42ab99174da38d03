// internal/widget/widget.go
//
// State machine for the segmented digit-entry control.
// Responsibilities:
//   - Model N single-character digit slots as one logical N-digit input.
//   - Auto-advance focus when a slot receives a character.
//   - Resolve transient two-character slot values down to one character.
//   - Coalescing Backspace/Delete: deleting on an empty slot clears the
//     previous slot and moves focus onto it.
//
// The browser page binds the same transitions to real input/keydown events
// (assets/static/digits.js); this package is the reference behavior and is
// what the tests exercise.
package widget

import "strings"

// Key identifies the keydown events the widget reacts to. Values match the
// DOM KeyboardEvent.key names so the JS adapter and server share vocabulary.
type Key string

const (
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// State is the owned state of one segmented input: the resting value of
// every slot, the shadow previous value used to resolve two-character
// transients, and the focus index.
type State struct {
	fields []string
	prev   []string
	focus  int
}

// New returns an empty widget with n slots and focus on the first.
func New(n int) *State {
	if n < 1 {
		n = 1
	}
	return &State{
		fields: make([]string, n),
		prev:   make([]string, n),
		focus:  0,
	}
}

// Size returns the number of slots.
func (s *State) Size() int { return len(s.fields) }

// Focus returns the index of the currently focused slot.
func (s *State) Focus() int { return s.focus }

// Field returns the resting value of slot i ("" or a single character).
func (s *State) Field(i int) string {
	if i < 0 || i >= len(s.fields) {
		return ""
	}
	return s.fields[i]
}

// Fields returns a copy of all slot values in order.
func (s *State) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Guess returns the concatenation of all slot values in order.
func (s *State) Guess() string { return strings.Join(s.fields, "") }

// Complete reports whether every slot holds exactly one digit.
func (s *State) Complete() bool {
	for _, f := range s.fields {
		if len(f) != 1 || f[0] < '0' || f[0] > '9' {
			return false
		}
	}
	return true
}

// Input applies an input event on slot i with the slot's new raw value.
//
// A raw value longer than one character happens when the platform lets a
// keystroke land in an already-filled slot; the transient is resolved to a
// single character before the event completes:
//   - last character equals the previous value: keep the first character
//   - first character equals the previous value: keep the last character
//   - neither matches: keep the last character typed
//
// After resolution the slot's shadow previous value is updated, and focus
// advances to slot i+1 whenever the slot holds one character and i is not
// the last slot.
func (s *State) Input(i int, raw string) {
	if i < 0 || i >= len(s.fields) {
		return
	}
	v := raw
	if chars := []rune(raw); len(chars) > 1 {
		first, last := string(chars[0]), string(chars[len(chars)-1])
		switch s.prev[i] {
		case last:
			v = first
		case first:
			v = last
		default:
			v = last
		}
	}
	s.fields[i] = v
	s.prev[i] = v
	if len(v) == 1 && i < len(s.fields)-1 {
		s.focus = i + 1
	}
}

// KeyDown applies a keydown event on slot i.
//
// Backspace and Delete clear the slot in place when it is non-empty; on an
// empty slot they merge backwards, clearing slot i-1 and focusing it, so a
// held Backspace erases the whole sequence right to left. Arrow keys move
// focus one slot and never leave [0, Size-1].
func (s *State) KeyDown(i int, key Key) {
	if i < 0 || i >= len(s.fields) {
		return
	}
	switch key {
	case KeyBackspace, KeyDelete:
		if s.fields[i] == "" {
			if i > 0 {
				s.fields[i-1] = ""
				s.prev[i-1] = ""
				s.focus = i - 1
			}
			return
		}
		s.fields[i] = ""
		s.prev[i] = ""
		s.focus = i
	case KeyArrowLeft:
		if i > 0 {
			s.focus = i - 1
		}
	case KeyArrowRight:
		if i < len(s.fields)-1 {
			s.focus = i + 1
		}
	}
}
