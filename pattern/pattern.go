package pattern

import "strings"

// Pattern is an ordered, fixed-length sequence of steps: true is a pulse
// (onset), false is a rest (silence). It is a plain value type — copy it
// freely; no operation here mutates its receiver.
type Pattern []bool

// Rotate returns a copy of p circularly shifted by amount positions.
// Positive amounts rotate left (earlier in time), negative amounts rotate
// right (later); magnitudes beyond one full cycle wrap. The element at
// index amount (normalized) becomes the new index 0.
// An empty pattern rotates to an empty pattern.
// Complexity: O(n) time and memory.
func (p Pattern) Rotate(amount int) Pattern {
	n := len(p)
	if n == 0 {
		return Pattern{}
	}
	// Normalize into [0, n) so negative and oversized amounts behave
	// identically to their in-range equivalents.
	shift := ((amount % n) + n) % n

	out := make(Pattern, 0, n)
	out = append(out, p[shift:]...)
	out = append(out, p[:shift]...)

	return out
}

// Render maps each pulse to the pulse rune and each rest to the rest
// rune, preserving order. Any runes are accepted, multi-byte glyphs
// included; the result always holds exactly len(p) runes.
// Complexity: O(n).
func (p Pattern) Render(pulse, rest rune) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, on := range p {
		if on {
			sb.WriteRune(pulse)
		} else {
			sb.WriteRune(rest)
		}
	}

	return sb.String()
}

// String implements fmt.Stringer using the conventional drum-tab
// notation: 'x' for a pulse, '.' for a rest.
func (p Pattern) String() string {
	return p.Render('x', '.')
}

// Pulses returns the number of pulses in p.
// Complexity: O(n).
func (p Pattern) Pulses() int {
	count := 0
	for _, on := range p {
		if on {
			count++
		}
	}

	return count
}

// Onsets returns the indices of all pulses in ascending order.
// A pattern without pulses yields an empty, non-nil slice.
// Complexity: O(n).
func (p Pattern) Onsets() []int {
	onsets := make([]int, 0, len(p))
	for i, on := range p {
		if on {
			onsets = append(onsets, i)
		}
	}

	return onsets
}

// Clone returns a deep copy of p, detached from the receiver's backing
// array. Complexity: O(n).
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)

	return out
}
