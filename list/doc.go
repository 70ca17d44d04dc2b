// Package list provides a generic doubly-linked list closed into a ring by
// a sentinel node.
//
// The sentinel is never a payload element: Begin() is sentinel.next, End()
// and REnd() are the sentinel itself, RBegin() is sentinel.prev. An empty
// list is a sentinel pointing at itself. The element count is tracked
// separately and always equals the number of nodes reachable from the
// sentinel.
//
// Iterators are node positions. Erasing a node invalidates only iterators
// that refer to that node; every other iterator stays usable. Operations on
// an invalidated or foreign iterator return ErrInvalidIterator or
// ErrForeignIterator instead of corrupting the ring.
//
// The zero value of List is an empty list ready to use. A List must not be
// copied by value once used; use Clone for a deep copy and Move to transfer
// the node chain.
//
// Quick ASCII picture of a two-element list:
//
//	 ┌──────────────────────────────┐
//	 ▼                              │
//	[sentinel] ⇄ [a] ⇄ [b] ⇄ (back to sentinel)
package list
