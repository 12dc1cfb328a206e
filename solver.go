package chart

import "errors"

// Tridiagonal linear system solver used by the natural cubic spline
// fit. The spline's second-derivative coefficients are the solution of
// a narrowly banded system, so a dense solve is never needed.

// ErrSingular is returned when elimination hits a zero pivot and the
// tridiagonal system has no unique solution.
var ErrSingular = errors.New("chart: singular tridiagonal system")

// SolveTridiagonal solves the n by n tridiagonal system A·x = b in
// place using Gaussian elimination without pivoting, where
//
//	A[i][i-1] = sub[i]   for 1 <= i <= n-1
//	A[i][i]   = diag[i]  for 0 <= i <= n-1
//	A[i][i+1] = sup[i]   for 0 <= i <= n-2
//
// The values sub[0] and sup[n-1] are ignored. On success the right
// hand side b is overwritten with the solution; sub and diag are used
// as elimination scratch space and are also overwritten. All four
// slices must have length at least n.
//
// Elimination without pivoting cannot recover from a zero pivot. The
// spline systems built by FitNatural are strictly diagonally dominant
// and never trigger this, but arbitrary input can: rather than letting
// a zero diagonal silently turn the solution into Inf/NaN, the solve
// stops and returns ErrSingular.
func SolveTridiagonal(sub, diag, sup, b []float64, n int) error {
	if n <= 0 {
		return nil
	}

	// Factorization and forward substitution.
	for i := 1; i < n; i++ {
		if diag[i-1] == 0 {
			return ErrSingular
		}
		sub[i] /= diag[i-1]
		diag[i] -= sub[i] * sup[i-1]
		b[i] -= sub[i] * b[i-1]
	}

	if diag[n-1] == 0 {
		return ErrSingular
	}
	b[n-1] /= diag[n-1]

	// Back substitution.
	for i := n - 2; i >= 0; i-- {
		b[i] = (b[i] - sup[i]*b[i+1]) / diag[i]
	}
	return nil
}
