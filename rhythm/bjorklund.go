package rhythm

import "github.com/katalvlaran/euclid/pattern"

// bjorklund runs the pairing phase of Bjorklund's algorithm for the
// general case 1 < pulses < steps. Inputs are assumed validated.
//
// It works on a transient list of groups (short boolean runs): pulses
// singleton [true] groups followed by steps-pulses singleton [false]
// groups. Each round concatenates right-partition groups onto their
// left-partition counterparts and shrinks the list, until the remainder
// on the right is a single group or empty. The concatenation of all
// groups, left to right, is the final pattern at every stage.
//
// Complexity: O(steps) total — the split at least halves per round, and
// each element is appended O(log steps) times across a linear budget.
func bjorklund(steps, pulses int) pattern.Pattern {
	groups := make([][]bool, 0, steps)
	for i := 0; i < pulses; i++ {
		groups = append(groups, []bool{true})
	}
	for i := 0; i < steps-pulses; i++ {
		groups = append(groups, []bool{false})
	}

	// split marks the boundary between the left partition (targets of
	// concatenation) and the right partition (the remainder being folded
	// in). Initially all true-groups sit on the left.
	split := pulses
	for {
		numLeft := split
		numRight := len(groups) - split
		if numRight <= 1 {
			break
		}

		numPairs := numLeft
		if numRight < numLeft {
			numPairs = numRight
		}

		// Fold the first numPairs right groups onto the matching left
		// groups, then drop the consumed right groups from the list.
		for i := 0; i < numPairs; i++ {
			groups[i] = append(groups[i], groups[split+i]...)
		}
		groups = append(groups[:split], groups[split+numPairs:]...)

		split = numPairs
	}

	p := make(pattern.Pattern, 0, steps)
	for _, g := range groups {
		p = append(p, g...)
	}

	return p
}
