// Package session wires the grid model to its derived spectral state.
//
// A [Session] is the single owner of a grid, the spectrum computed from it,
// and the current eigenvector selection. Edits recompute synchronously;
// selection changes never do. Frontends (GUI, TUI, CLI) drive one session
// each from their event loop; nothing here is safe for concurrent use.
package session
