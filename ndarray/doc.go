// Package ndarray provides a minimal generic n-dimensional array in row-major
// (C) order together with the axis permutations and reshapes needed to fold an
// n-d array into the 2-d [rows, axis] form and back.
//
// Every transforming operation materializes its result, so the returned
// array is always contiguous and owned by the caller.
//
// Round trip:
//
//	a2, _ := ndarray.To2D(a, axis)            // [numel/shape[axis], shape[axis]]
//	b, _ := ndarray.From2D(a2, a.Shape(), axis) // b equals a element for element
package ndarray
