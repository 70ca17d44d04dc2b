// SPDX-License-Identifier: MIT
// Package list: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag); callers match them via errors.Is. No operation panics on misuse.

package list

import "errors"

var (
	// ErrEmptyList is returned by PopFront/PopBack/Front/Back on an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrInvalidIterator marks a zero Iterator, an iterator to an erased node,
	// or a range whose end is not reachable from its start.
	ErrInvalidIterator = errors.New("list: invalid iterator")

	// ErrForeignIterator marks an iterator that belongs to a different list.
	ErrForeignIterator = errors.New("list: iterator belongs to another list")

	// ErrEndIterator is returned when the operation needs a payload node but
	// got the End (sentinel) position.
	ErrEndIterator = errors.New("list: end iterator has no value")

	// ErrNegativeCount is returned by InsertN for count < 0.
	ErrNegativeCount = errors.New("list: negative count")
)
