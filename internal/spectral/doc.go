// Package spectral builds graph Laplacians over the free cells of a grid
// world and computes their eigendecompositions (the proto-value functions).
//
//   - [Laplacian]: standard graph Laplacian L = D - A over free cells with
//     unit weights on 4-adjacent pairs, plus the bijection between matrix
//     index and grid coordinates
//   - [Spectrum]: eigenvalues in ascending order with their eigenvectors,
//     normalized per vector to a max-abs of 1 for display
//
// # Example
//
//	lap := spectral.BuildLaplacian(g)
//	sp, err := spectral.Solve(lap)
//	v := sp.Vector(1) // first non-trivial mode
//
// # Degenerate eigenvalues
//
// Ordering among numerically equal eigenvalues is whatever the underlying
// LAPACK routine produces. It is deterministic for a fixed grid but carries
// no meaning beyond the tie.
package spectral
