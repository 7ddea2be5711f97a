package rhythm

import "github.com/katalvlaran/euclid/pattern"

// Euclidean — Bjorklund's maximally-even pulse distribution.
//
// Description:
//
//	Produces the Euclidean rhythm E(pulses, steps): a Pattern of exactly
//	steps booleans with exactly pulses true entries, spaced as evenly as
//	the grid allows, then circularly left-shifted by rotation positions.
//
// Algorithm Outline:
//  1. Validate: steps ≥ 1 and 0 ≤ pulses ≤ steps, else ErrInvalidInput.
//  2. Degenerate cycles short-circuit: pulses == 0 is all rests,
//     pulses == steps is all pulses; rotation is a no-op for both.
//  3. A single pulse short-circuits to a pulse at index 0 (the general
//     pairing would produce the same sequence the long way round).
//  4. Otherwise run the Bjorklund pairing (see bjorklund.go), then
//     rotate by rotation normalized into [0, steps).
//
// Rotation accepts any integer: negative amounts and magnitudes beyond
// one full cycle wrap, so E(s, p, r) == E(s, p, r mod s) always holds.
//
// Errors:
//   - ErrZeroSteps         — steps < 1.
//   - ErrPulsesExceedSteps — pulses < 0 or pulses > steps.
//
// Complexity: O(steps) time and memory.
func Euclidean(steps, pulses, rotation int) (pattern.Pattern, error) {
	if steps < 1 {
		return nil, ErrZeroSteps
	}
	if pulses < 0 || pulses > steps {
		return nil, ErrPulsesExceedSteps
	}

	// Uniform cycles: nothing to distribute, rotation cannot change them.
	if pulses == 0 {
		return make(pattern.Pattern, steps), nil
	}
	if pulses == steps {
		p := make(pattern.Pattern, steps)
		for i := range p {
			p[i] = true
		}

		return p, nil
	}

	var p pattern.Pattern
	if pulses == 1 {
		// One pulse is trivially even: onset at the cycle start.
		p = make(pattern.Pattern, steps)
		p[0] = true
	} else {
		p = bjorklund(steps, pulses)
	}

	if rot := ((rotation % steps) + steps) % steps; rot > 0 {
		p = p.Rotate(rot)
	}

	return p, nil
}
