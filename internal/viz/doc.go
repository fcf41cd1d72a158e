// Package viz renders the propeller in a terminal.
//
// The scene graph is projected through the scene camera onto a braille
// [Canvas], where each character cell holds 2x4 dots. [Model] is a Bubble
// Tea program that ticks the rig, redraws the wireframe and plots the
// recent swing angle.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial angles and speeds
//	+/-   - Speed up / slow down both rotations
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
