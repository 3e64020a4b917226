package contiguous

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Array2 is a fixed-size two-dimensional array stored as a flat slice in
// row-major order. It does not resize and is not safe for concurrent use.
type Array2[T any] struct {
	data []T
	cols int
}

// NewArray2 creates an Array2 of the given dimensions with every element set
// to fill.
func NewArray2[T any](numColumns, numRows int, fill T) *Array2[T] {
	data := make([]T, numColumns*numRows)
	for i := range data {
		data[i] = fill
	}
	return &Array2[T]{data: data, cols: numColumns}
}

// FromRows creates an Array2 from the given rows. All rows must have
// identical lengths; ragged input reports *ErrRowLengthMismatch.
func FromRows[T any](rows [][]T) (*Array2[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, cols*len(rows))
	for _, row := range rows {
		if len(row) != cols {
			return nil, &ErrRowLengthMismatch{Expected: cols, Actual: len(row)}
		}
		data = append(data, row...)
	}
	return &Array2[T]{data: data, cols: cols}, nil
}

// MustFromRows is like FromRows but panics on rows of inconsistent length.
func MustFromRows[T any](rows [][]T) *Array2[T] {
	a, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return a
}

// NumColumns returns the number of columns (elements per row).
func (a *Array2[T]) NumColumns() int { return a.cols }

// NumRows returns the number of rows.
func (a *Array2[T]) NumRows() int {
	if a.cols == 0 {
		return 0
	}
	return len(a.data) / a.cols
}

// NumElements returns the number of elements across all rows.
func (a *Array2[T]) NumElements() int { return len(a.data) }

// Elements returns the underlying buffer in row-major order. Mutating it is
// allowed; the dimensions are fixed.
func (a *Array2[T]) Elements() []T { return a.data }

// Row returns the i-th contiguous block of NumColumns elements, or
// (nil, false) if the row index is out of bounds. The slice aliases the
// underlying buffer.
func (a *Array2[T]) Row(rowIndex int) ([]T, bool) {
	if rowIndex < 0 || a.cols == 0 {
		return nil, false
	}
	start := rowIndex * a.cols
	end := start + a.cols
	if end > len(a.data) {
		return nil, false
	}
	return a.data[start:end:end], true
}

// RowAt is like Row but panics if the row index is out of bounds.
func (a *Array2[T]) RowAt(rowIndex int) []T {
	row, ok := a.Row(rowIndex)
	if !ok {
		panic(fmt.Sprintf("row index %d is out of bounds", rowIndex))
	}
	return row
}

// Rows returns an iterator over rows. Each item is the slice of all elements
// in the corresponding row, aliasing the underlying buffer.
func (a *Array2[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for i := 0; i < a.NumRows(); i++ {
			if !yield(a.RowAt(i)) {
				return
			}
		}
	}
}

// At returns the element at the given row and column. Panics if either index
// is out of bounds.
func (a *Array2[T]) At(rowIndex, colIndex int) T {
	if colIndex < 0 || colIndex >= a.cols {
		panic(fmt.Sprintf("column index %d is out of bounds", colIndex))
	}
	return a.RowAt(rowIndex)[colIndex]
}

// Set replaces the element at the given row and column. Panics if either
// index is out of bounds.
func (a *Array2[T]) Set(rowIndex, colIndex int, value T) {
	if colIndex < 0 || colIndex >= a.cols {
		panic(fmt.Sprintf("column index %d is out of bounds", colIndex))
	}
	a.RowAt(rowIndex)[colIndex] = value
}

// Clone returns a copy of the array with its own backing storage.
func (a *Array2[T]) Clone() *Array2[T] {
	return &Array2[T]{data: slices.Clone(a.data), cols: a.cols}
}

type array2JSON[T any] struct {
	Columns int `json:"columns"`
	Data    []T `json:"data"`
}

// MarshalJSON encodes the array as its column count plus the flat row-major
// element buffer.
func (a *Array2[T]) MarshalJSON() ([]byte, error) {
	data := a.data
	if data == nil {
		data = []T{}
	}
	return json.Marshal(array2JSON[T]{Columns: a.cols, Data: data})
}

// UnmarshalJSON decodes an array, validating that the element count is
// consistent with the column count. Inconsistent input reports
// *ErrRowLengthMismatch.
func (a *Array2[T]) UnmarshalJSON(data []byte) error {
	var raw array2JSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Columns < 0 || (raw.Columns == 0 && len(raw.Data) > 0) {
		return &ErrRowLengthMismatch{Expected: raw.Columns, Actual: len(raw.Data)}
	}
	if raw.Columns > 0 && len(raw.Data)%raw.Columns != 0 {
		return &ErrRowLengthMismatch{Expected: raw.Columns, Actual: len(raw.Data) % raw.Columns}
	}
	a.data = raw.Data
	a.cols = raw.Columns
	return nil
}
