//go:build assert_enabled

package main

// Assert checks an invariant of the World. It only does something in builds
// made with the assert_enabled tag, so the checks cost nothing in releases.
func Assert(condition bool) {
	if !condition {
		panic("world invariant broken")
	}
}
