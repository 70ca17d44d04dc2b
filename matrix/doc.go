// Package matrix offers a small dense-matrix value type and closed-form
// linear algebra on top of it.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with checked (At/Set) and unchecked
//     (Elem/Put) access, copy (Clone/Copy) and move (Move) semantics, and
//     shape-preserving resizing (SetRows/SetCols).
//   - Arithmetic: Add, Sub, Mul, Scale, Transpose as pure functions, plus the
//     in-place SumMatrix, SubMatrix, MulNumber and MulMatrix methods.
//   - Cofactor algebra: Determinant (first-row expansion), Minor,
//     CalcComplements, Adjugate and Inverse (adjugate / determinant).
//   - Tolerant equality (Equal, EqMatrix) with DefaultEpsilon = 1e-6.
//   - gonum interop (FromGonum, ToGonum).
//
// Every shape or numeric violation is reported as a sentinel error
// (ErrDimensionMismatch, ErrInvalidDimensions, ErrNonSquare, ErrSingular, ...)
// matched with errors.Is.
//
// Cofactor expansion is O(n!); it suits small matrices where exact integer
// arithmetic matters more than speed.
package matrix
