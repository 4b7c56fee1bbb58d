// Package viz plays a compressed trajectory in the terminal.
//
// [Player] is a Bubble Tea model that pulls frames from a [render.Frames]
// sequence at a fixed rate and draws the body on a Braille [Canvas].
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first frame
//	Q/Esc - Quit
package viz
