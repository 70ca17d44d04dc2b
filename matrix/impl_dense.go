// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), safe and unchecked accessors,
// copy/move semantics and resizing.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: At/Set return errors instead of panicking.
//   - Offer unchecked call-style accessors (Elem/Put) for hot loops and literal-style code.
//   - Model value semantics explicitly: Clone deep-copies, Move transfers ownership.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Elem/Put: O(1); Clone: O(r*c); Move: O(1);
//     SetRows/SetCols: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxSetRows = "SetRows" // resize tag
	ctxSetCols = "SetCols" // resize tag
	ctxFrom    = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// defaultSide is the row/column count of the default matrix returned by New.
const defaultSide = 1

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are ≥1 for every live matrix and
//     0 only after Move has transferred the buffer away.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/MulNumber.
//   - eps is the tolerance used by EqMatrix.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
	eps            float64   // comparison tolerance for EqMatrix
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns the default 1×1 zero matrix.
// Complexity: O(1).
func New() *Dense {
	m, _ := NewDense(defaultSide, defaultSide) // 1×1 always valid

	return m
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWith(rows, cols)
}

// NewDenseWith is NewDense with an explicit numeric policy.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: resolve options and allocate.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// make() zero-fills the buffer deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}, nil
}

// NewFromRows builds a Dense from a rectangular row literal.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and small literal matrices.
//
// Implementation:
//   - Stage 1: validate non-empty outer and first row.
//   - Stage 2: copy row by row, rejecting ragged rows and, under policy, NaN/Inf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite value under validating policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	m, err := NewDenseWith(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, matrixErrorf(ctxFrom, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(ctxFrom, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf {
		if err = ValidateFinite(v); err != nil {
			return denseErrorf(ctxSet, row, col, err)
		}
	}
	m.data[off] = v

	return nil
}

// Elem is the unchecked call-style read m(row, col).
// No bounds or policy checks are made; a column index past Cols() silently
// reads the next row, and an offset outside the buffer panics in the runtime.
// Complexity: O(1).
//
// Hints:
//   - Use in tight loops where indices are derived from Rows()/Cols().
func (m *Dense) Elem(row, col int) float64 { return m.data[row*m.c+col] }

// Put is the unchecked call-style write m(row, col) = v.
// Same caveats as Elem; the numeric policy is not enforced.
// Complexity: O(1).
func (m *Dense) Put(row, col int, v float64) { m.data[row*m.c+col] = v }

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
//
// Behavior highlights:
//   - Independence: mutations of the copy never affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		eps:            m.eps,
	}
}

// Move transfers the buffer into a new Dense and leaves m empty (0×0).
// MAIN DESCRIPTION:
//   - Ownership transfer without copying; the source stays usable only for
//     shape queries, resizing errors and as a Move source again.
//
// Implementation:
//   - Stage 1: build the destination from m's fields.
//   - Stage 2: reset m to 0×0 with a nil buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Move() *Dense {
	dst := &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
		eps:            m.eps,
	}
	m.r, m.c, m.data = 0, 0, nil

	return dst
}

// SetRows resizes the matrix to n rows, keeping overlapping entries and
// zero-filling new cells.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0 or the matrix has no columns (moved-from).
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if err := m.resize(n, m.c); err != nil {
		return matrixErrorf(ctxSetRows, err)
	}

	return nil
}

// SetCols resizes the matrix to n columns, keeping overlapping entries and
// zero-filling new cells.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0 or the matrix has no rows (moved-from).
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if err := m.resize(m.r, n); err != nil {
		return matrixErrorf(ctxSetCols, err)
	}

	return nil
}

// resize reallocates to rows×cols and copies the overlapping top-left block.
// Complexity: O(rows*cols).
func (m *Dense) resize(rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return err
	}
	if rows == m.r && cols == m.c {
		return nil
	}
	buf := make([]float64, rows*cols)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	var i int
	for i = 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// String renders rows as lines with comma-separated values.
//
// Returns:
//   - string: e.g. "[1, 2]\n[3, 4]\n"; empty for a moved-from matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value under policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf {
				if err := ValidateFinite(nv); err != nil {
					return denseErrorf(ctxApply, i, j, err)
				}
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// assign replaces m's shape and buffer with src's (used by in-place kernels).
func (m *Dense) assign(src *Dense) {
	m.r, m.c, m.data = src.r, src.c, src.data
}
