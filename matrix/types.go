// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read-only view shared by Dense and Sparse.
// At never panics; it returns ErrOutOfRange on invalid indices.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (float64, error)
}

// StorageOrder selects the compressed layout of a Sparse matrix.
//   - CSR: rows are the outer dimension, indices hold column numbers.
//   - CSC: columns are the outer dimension, indices hold row numbers.
type StorageOrder uint8

const (
	// CSR is compressed sparse row storage.
	CSR StorageOrder = iota

	// CSC is compressed sparse column storage.
	CSC
)

// String implements fmt.Stringer.
func (o StorageOrder) String() string {
	if o == CSC {
		return "CSC"
	}

	return "CSR"
}

// flip returns the opposite storage order.
func (o StorageOrder) flip() StorageOrder {
	if o == CSR {
		return CSC
	}

	return CSR
}
