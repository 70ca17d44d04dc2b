// SPDX-License-Identifier: MIT

package list

// node is a ring cell. The sentinel's list field always points at its owner;
// a payload node's list field is cleared when the node is erased.
type node[T any] struct {
	value      T
	next, prev *node[T]
	list       *List[T]
}

// Iterator is a position in a List: either a payload node or the End sentinel.
// The zero Iterator is invalid.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator refers to a live node (payload or sentinel).
// Complexity: O(1).
func (it Iterator[T]) Valid() bool {
	return it.n != nil && it.n.list != nil
}

// IsEnd reports whether the iterator is the End (sentinel) position.
// Complexity: O(1).
func (it Iterator[T]) IsEnd() bool {
	return it.Valid() && it.n == &it.n.list.root
}

// Value returns the payload; the zero T at End or for an invalid iterator.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	if !it.Valid() || it.IsEnd() {
		var zero T
		return zero
	}

	return it.n.value
}

// Set overwrites the payload in place.
//
// Errors:
//   - ErrInvalidIterator, ErrEndIterator.
func (it Iterator[T]) Set(v T) error {
	if !it.Valid() {
		return ErrInvalidIterator
	}
	if it.IsEnd() {
		return ErrEndIterator
	}
	it.n.value = v

	return nil
}

// Next steps forward. From the last payload node it reaches End; from End it
// wraps to the first node. An invalid iterator stays invalid.
// Complexity: O(1).
func (it Iterator[T]) Next() Iterator[T] {
	if !it.Valid() {
		return Iterator[T]{}
	}

	return Iterator[T]{n: it.n.next}
}

// Prev steps backward; symmetric to Next.
// Complexity: O(1).
func (it Iterator[T]) Prev() Iterator[T] {
	if !it.Valid() {
		return Iterator[T]{}
	}

	return Iterator[T]{n: it.n.prev}
}

// Equal reports whether both iterators refer to the same position.
// Complexity: O(1).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}
