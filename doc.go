// Package euclid generates Euclidean rhythms — boolean pulse patterns
// that distribute a number of onsets as evenly as possible across a
// number of steps, using Bjorklund's algorithm.
//
// 🚀 What is euclid?
//
//	A small, dependency-light library for the rhythm family behind much
//	of the world's traditional music:
//		• Bjorklund distributor: E(pulses, steps) patterns in O(steps)
//		• Rotation: circular shifts by any integer, negative included
//		• Rendering: textual display with any pair of runes
//
// ✨ Why choose euclid?
//
//   - Pure functions – no state, no I/O, safe from any goroutine
//   - Rock-solid contracts – invalid input fails fast with sentinel errors
//   - Value semantics – every operation returns a fresh Pattern
//
// Everything is organized under two subpackages:
//
//	pattern/ — the Pattern type plus rotation & rendering utilities
//	rhythm/  — the Bjorklund distributor (rhythm.Euclidean)
//
// Quick ASCII example:
//
//	E(3,8) — the Cuban tresillo:
//
//	    x . . x . . x .
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/euclid
package euclid
