package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/euclid/pattern"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePattern_Rotate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Shift the tresillo's starting point around the cycle. Positive
//	amounts rotate left (earlier), negative amounts rotate right
//	(later); both wrap past a full cycle.
//
// Complexity: O(n) per rotation.
func ExamplePattern_Rotate() {
	p := pattern.Pattern{true, false, false, true, false, false, true, false}

	fmt.Println(p.Rotate(0))
	fmt.Println(p.Rotate(3))
	fmt.Println(p.Rotate(-2))
	fmt.Println(p.Rotate(11)) // 11 mod 8 == 3
	// Output:
	// x..x..x.
	// x..x.x..
	// x.x..x..
	// x..x.x..
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePattern_Render
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same pattern displayed with three alphabets — drum tab, binary
//	and block glyphs. Any runes work, multi-byte included.
func ExamplePattern_Render() {
	p := pattern.Pattern{true, false, true, true, false, true, true, false}

	fmt.Println(p.Render('x', '.'))
	fmt.Println(p.Render('1', '0'))
	fmt.Println(p.Render('█', '░'))
	// Output:
	// x.xx.xx.
	// 10110110
	// █░██░██░
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePattern_Onsets
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sequencers usually want the pulse positions, not the raw grid.
func ExamplePattern_Onsets() {
	p := pattern.Pattern{true, false, false, true, false, false, true, false}

	fmt.Println(p.Pulses(), p.Onsets())
	// Output:
	// 3 [0 3 6]
}
