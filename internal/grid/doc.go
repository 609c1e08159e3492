// Package grid provides the mutable grid-world model for the visualizer.
//
// A [Grid] is a fixed-size 2D array of free/wall cells with a structural
// version counter. Dependents (the Laplacian and its spectrum) compare the
// counter against the value they were built from to decide when to recompute.
//
// All mutation entry points clamp or ignore out-of-range coordinates; the
// grid never panics on bad input.
package grid
