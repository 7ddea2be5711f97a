// Package pattern defines the Pattern type — an ordered, fixed-length
// sequence of booleans where true marks a pulse (onset) and false marks
// a rest (silence) — together with its transform utilities.
//
// 🚀 What can it do?
//
//	• Rotate: circular shift by any integer amount, positive (earlier),
//	  negative (later) or larger than one full cycle
//	• Render: map a pattern to text with caller-chosen runes
//	• Inspect: count pulses, list onset positions, deep-copy
//
// ✨ Guarantees:
//
//   - Value semantics – every transform returns a new Pattern; inputs
//     are never mutated
//   - Total functions – rotation and rendering cannot fail, for any
//     integer amount, any runes, and any pattern including the empty one
//   - Stateless – safe for concurrent use without synchronization
//
// ⚙️ Usage:
//
//	p := pattern.Pattern{true, false, false, true, false, false, true, false}
//	fmt.Println(p.Render('x', '.')) // "x..x..x."
//	fmt.Println(p.Rotate(3))        // "x..x.x.." shifted start
//
// Patterns usually come from rhythm.Euclidean, but every utility here
// accepts any boolean sequence, however it was assembled.
package pattern
