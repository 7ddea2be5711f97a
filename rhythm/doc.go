// Package rhythm computes Euclidean rhythm patterns with Bjorklund's
// algorithm: pulses distributed as evenly as possible across a cycle of
// steps, with an optional circular rotation of the starting point.
//
// 🚀 What is a Euclidean rhythm?
//
//	E(pulses, steps) spaces consecutive pulses as equally as the step
//	grid allows, absorbing any remainder as near-equal extra gaps — the
//	same maximally-even property the mathematical Euclidean algorithm
//	produces. These patterns show up across traditional music:
//	  • E(3,8)  — Cuban tresillo        x . . x . . x .
//	  • E(5,8)  — West African bell     x . x x . x x .
//	  • E(5,12) — Persian rhythm        x . . x . x . . x . x .
//	  • E(7,16) — Brazilian bossa nova  x . . x . x . x . . x . x . x .
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/euclid/rhythm"
//
//	p, err := rhythm.Euclidean(8, 3, 0)
//	if err != nil {
//	  // ErrInvalidInput: steps < 1 or pulses outside [0, steps]
//	}
//	fmt.Println(p) // x..x..x.
//
// Performance:
//
//   - Time:   O(steps) — the pairing loop at least halves its working
//     set each round, and total concatenation work stays linear
//   - Memory: O(steps)
//
// Every function is pure and deterministic; concurrent callers need no
// synchronization.
//
// Background: E. Bjorklund devised the algorithm in 2003 for spacing
// neutron-beam timing pulses; Godfried Toussaint (2005) showed the same
// procedure generates traditional musical rhythms worldwide.
package rhythm
