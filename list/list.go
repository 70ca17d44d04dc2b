// SPDX-License-Identifier: MIT

// Package list - sentinel ring storage and sequence operations.
//
// Complexity quicksheet:
//   - Insert/Erase/Push*/Pop*: O(1); InsertN/InsertValues: O(k);
//     InsertRange/EraseRange: O(k) for k elements in the range;
//     Clone/Assign/Clear/Move: O(n).

package list

import (
	"fmt"
	"iter"
)

// Operation name constants for unified error wrapping.
const (
	opInsert      = "Insert"
	opInsertN     = "InsertN"
	opInsertRange = "InsertRange"
	opErase       = "Erase"
	opEraseRange  = "EraseRange"
	opPopFront    = "PopFront"
	opPopBack     = "PopBack"
	opFront       = "Front"
	opBack        = "Back"
)

// listErrorf wraps err with an operation tag, preserving the sentinel via %w.
func listErrorf(tag string, err error) error {
	return fmt.Errorf("List.%s: %w", tag, err)
}

// List is a generic doubly-linked list with a sentinel root.
// The zero value is an empty list ready to use.
type List[T any] struct {
	root node[T] // sentinel; root.next is the front, root.prev the back
	len  int     // payload node count
}

// New returns an initialized empty list.
func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// From returns a list holding values in order.
// Complexity: O(len(values)).
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Init closes the ring on itself, dropping any payload nodes.
// Complexity: O(n) when non-empty (erased nodes are detached), O(1) otherwise.
func (l *List[T]) Init() *List[T] {
	if l.root.next != nil {
		l.detachAll()
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.list = l
	l.len = 0

	return l
}

// lazyInit makes the zero value usable.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// detachAll invalidates every payload node so stale iterators are detected.
func (l *List[T]) detachAll() {
	for p := l.root.next; p != nil && p != &l.root; {
		next := p.next
		p.next, p.prev, p.list = nil, nil, nil
		p = next
	}
}

// Len returns the number of payload elements.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list has no payload elements.
// Complexity: O(1).
func (l *List[T]) Empty() bool { return l.len == 0 }

// Clear removes every element. Iterators to removed nodes become invalid.
// Complexity: O(n).
func (l *List[T]) Clear() { l.Init() }

// Begin returns the first payload position, or End when empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()

	return Iterator[T]{n: l.root.next}
}

// End returns the sentinel position one past the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()

	return Iterator[T]{n: &l.root}
}

// RBegin returns the last payload position, or REnd when empty.
func (l *List[T]) RBegin() Iterator[T] {
	l.lazyInit()

	return Iterator[T]{n: l.root.prev}
}

// REnd returns the sentinel position one before the first element.
// It is the same node as End.
func (l *List[T]) REnd() Iterator[T] { return l.End() }

// checkPos validates that pos is a live position of l (sentinel allowed).
func (l *List[T]) checkPos(pos Iterator[T]) error {
	if !pos.Valid() {
		return ErrInvalidIterator
	}
	if pos.n.list != l {
		return ErrForeignIterator
	}

	return nil
}

// insertBefore links a new node holding v in front of at.
func (l *List[T]) insertBefore(at *node[T], v T) *node[T] {
	n := &node[T]{value: v, next: at, prev: at.prev, list: l}
	at.prev.next = n
	at.prev = n
	l.len++

	return n
}

// unlink removes n from the ring and invalidates it.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.list = nil, nil, nil
	l.len--
}

// Insert places v before pos and returns the new element's position.
//
// Errors:
//   - ErrInvalidIterator, ErrForeignIterator.
//
// Complexity: O(1).
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(pos); err != nil {
		return Iterator[T]{}, listErrorf(opInsert, err)
	}

	return Iterator[T]{n: l.insertBefore(pos.n, v)}, nil
}

// InsertN places count copies of v before pos. It returns the first inserted
// position, or pos when count is zero.
//
// Errors:
//   - ErrInvalidIterator, ErrForeignIterator, ErrNegativeCount.
//
// Complexity: O(count).
func (l *List[T]) InsertN(pos Iterator[T], count int, v T) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(pos); err != nil {
		return Iterator[T]{}, listErrorf(opInsertN, err)
	}
	if count < 0 {
		return Iterator[T]{}, listErrorf(opInsertN, ErrNegativeCount)
	}

	first := pos
	for i := 0; i < count; i++ {
		n := l.insertBefore(pos.n, v)
		if i == 0 {
			first = Iterator[T]{n: n}
		}
	}

	return first, nil
}

// InsertValues places values before pos in order. It returns the first
// inserted position, or pos when values is empty.
//
// Errors:
//   - ErrInvalidIterator, ErrForeignIterator.
//
// Complexity: O(len(values)).
func (l *List[T]) InsertValues(pos Iterator[T], values ...T) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(pos); err != nil {
		return Iterator[T]{}, listErrorf(opInsertRange, err)
	}

	first := pos
	for i, v := range values {
		n := l.insertBefore(pos.n, v)
		if i == 0 {
			first = Iterator[T]{n: n}
		}
	}

	return first, nil
}

// InsertRange copies the half-open range [first, last) of any list (this one
// included) before pos. It returns the first inserted position, or pos when
// the range is empty.
// The range is snapshotted before insertion, so inserting a range of l into
// itself copies exactly the original elements.
//
// Errors:
//   - ErrInvalidIterator (pos/first/last invalid, or last unreachable from first).
//   - ErrForeignIterator (pos not in l, or first and last in different lists).
//
// Complexity: O(k) for k elements in the range.
func (l *List[T]) InsertRange(pos Iterator[T], first, last Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(pos); err != nil {
		return Iterator[T]{}, listErrorf(opInsertRange, err)
	}
	values, err := collectRange(first, last)
	if err != nil {
		return Iterator[T]{}, listErrorf(opInsertRange, err)
	}

	return l.InsertValues(pos, values...)
}

// collectRange snapshots the payloads of [first, last).
func collectRange[T any](first, last Iterator[T]) ([]T, error) {
	if !first.Valid() || !last.Valid() {
		return nil, ErrInvalidIterator
	}
	src := first.n.list
	if last.n.list != src {
		return nil, ErrForeignIterator
	}

	var values []T
	for p := first.n; p != last.n; p = p.next {
		if p == &src.root {
			return nil, ErrInvalidIterator // walked past End without meeting last
		}
		values = append(values, p.value)
	}

	return values, nil
}

// Erase removes the element at pos and returns the position that followed it.
// Only iterators to the erased node are invalidated.
//
// Errors:
//   - ErrInvalidIterator, ErrForeignIterator, ErrEndIterator.
//
// Complexity: O(1).
func (l *List[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(pos); err != nil {
		return Iterator[T]{}, listErrorf(opErase, err)
	}
	if pos.n == &l.root {
		return Iterator[T]{}, listErrorf(opErase, ErrEndIterator)
	}
	next := pos.n.next
	l.unlink(pos.n)

	return Iterator[T]{n: next}, nil
}

// EraseRange removes [first, last) and returns last.
// The range is validated before anything is removed.
//
// Errors:
//   - ErrInvalidIterator (invalid bounds or last unreachable from first).
//   - ErrForeignIterator.
//
// Complexity: O(k) for k elements in the range.
func (l *List[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	l.lazyInit()
	if err := l.checkPos(first); err != nil {
		return Iterator[T]{}, listErrorf(opEraseRange, err)
	}
	if err := l.checkPos(last); err != nil {
		return Iterator[T]{}, listErrorf(opEraseRange, err)
	}
	for p := first.n; p != last.n; p = p.next {
		if p == &l.root {
			return Iterator[T]{}, listErrorf(opEraseRange, ErrInvalidIterator)
		}
	}

	for p := first.n; p != last.n; {
		next := p.next
		l.unlink(p)
		p = next
	}

	return last, nil
}

// PushFront inserts v at the front.
// Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.insertBefore(l.root.next, v)
}

// PushBack inserts v at the back.
// Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.insertBefore(&l.root, v)
}

// PopFront removes and returns the first element.
//
// Errors:
//   - ErrEmptyList.
func (l *List[T]) PopFront() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, listErrorf(opPopFront, ErrEmptyList)
	}
	n := l.root.next
	v := n.value
	l.unlink(n)

	return v, nil
}

// PopBack removes and returns the last element.
//
// Errors:
//   - ErrEmptyList.
func (l *List[T]) PopBack() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, listErrorf(opPopBack, ErrEmptyList)
	}
	n := l.root.prev
	v := n.value
	l.unlink(n)

	return v, nil
}

// Front returns the first element without removing it.
//
// Errors:
//   - ErrEmptyList.
func (l *List[T]) Front() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, listErrorf(opFront, ErrEmptyList)
	}

	return l.root.next.value, nil
}

// Back returns the last element without removing it.
//
// Errors:
//   - ErrEmptyList.
func (l *List[T]) Back() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, listErrorf(opBack, ErrEmptyList)
	}

	return l.root.prev.value, nil
}

// Clone returns a deep copy holding the same values in the same order.
// Values are copied with assignment; pointer payloads are shared.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	dst := New[T]()
	for v := range l.All() {
		dst.PushBack(v)
	}

	return dst
}

// Assign replaces l's contents with a copy of other's. Self-assignment is a no-op.
// Iterators into l's previous nodes become invalid.
// Complexity: O(len(l) + len(other)).
func (l *List[T]) Assign(other *List[T]) {
	if other == l {
		return
	}
	values := other.Values()
	l.Init()
	for _, v := range values {
		l.PushBack(v)
	}
}

// Move transfers the node chain into a new list and resets l to an empty
// ring. Iterators to payload nodes stay valid and now belong to the returned
// list; End iterators of l keep referring to l.
// Complexity: O(n) (each node's owner is rewritten).
func (l *List[T]) Move() *List[T] {
	l.lazyInit()
	dst := New[T]()
	if l.len == 0 {
		return dst
	}

	first, last := l.root.next, l.root.prev
	dst.root.next, dst.root.prev = first, last
	first.prev, last.next = &dst.root, &dst.root
	for p := first; p != &dst.root; p = p.next {
		p.list = dst
	}
	dst.len = l.len

	// Reset the source without detaching the transferred nodes.
	l.root.next, l.root.prev = &l.root, &l.root
	l.len = 0

	return dst
}

// All yields the values front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for p := l.root.next; p != &l.root; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Backward yields the values back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.lazyInit()
		for p := l.root.prev; p != &l.root; p = p.prev {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Values returns a slice snapshot of the values front to back.
// Complexity: O(n).
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}
