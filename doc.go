// SPDX-License-Identifier: MIT

// Package s21kit collects two small numeric and container building blocks.
//
//	matrix/ - dense row-major float64 matrices: arithmetic, transpose,
//	          determinant, cofactor matrix, inverse; gonum interop.
//	list/   - generic doubly-linked list with a sentinel ring and
//	          position iterators.
//
// The matrixdemo command under cmd/ inverts a 1×1 matrix read from the
// environment.
package s21kit
