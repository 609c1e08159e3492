// Package viz provides the terminal frontend for the visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: grid editor plus heatmap display driven by the keyboard
//   - heatmap cells rendered as colored background blocks
//   - an asciigraph strip of the eigenvalue profile
//
// # Key Bindings
//
//	Arrows/hjkl - Move the cursor (paints while a draw mode is active)
//	Space       - Toggle wall under the cursor
//	W           - Wall-drawing mode (cursor movement paints walls)
//	E           - Erase mode (cursor movement clears walls)
//	Esc         - Back to idle (no painting)
//	R           - Reset all walls
//	[ / ]       - Previous / next eigenvector by rank
//	{ / }       - Slide selection by eigenvalue
//	C           - Cycle colormap
//	?           - Toggle help overlay
//	Q           - Quit
package viz
