// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

// Package list implements an owned, singly-linked list with recursive
// length, sort, and free operations.
package list

import "cmp"

// Element is one cell of a List.
type Element[T any] struct {
	Value T

	next *Element[T]
}

// Next returns the following element or nil if e is the last one.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// List is a singly-linked list of values.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Front returns the first element or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Append adds v as the new last element.
func (l *List[T]) Append(v T) {
	l.appendElement(&Element[T]{Value: v})
}

func (l *List[T]) appendElement(e *Element[T]) {
	e.next = nil

	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
}

// Len counts the elements.
func (l *List[T]) Len() int {
	return length(l.head)
}

func length[T any](e *Element[T]) int {
	if e == nil {
		return 0
	}

	return 1 + length(e.next)
}

// Values returns a copy of the values in list order.
func (l *List[T]) Values() []T {
	values := []T{}
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}

	return values
}

// Sort reorders the list in place so that cmp(a, b) <= 0 holds for every
// adjacent pair. The first element is the pivot; elements for which
// cmp(x, pivot) < 0 go before it and all others after it. The sort is not stable.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.head == nil || l.head.next == nil {
		return
	}

	pivot := l.head
	var less, rest List[T]

	for e := pivot.next; e != nil; {
		next := e.next
		if cmp(e.Value, pivot.Value) < 0 {
			less.appendElement(e)
		} else {
			rest.appendElement(e)
		}
		e = next
	}

	less.Sort(cmp)
	rest.Sort(cmp)

	l.head, l.tail = nil, nil
	l.splice(&less)
	l.appendElement(pivot)
	l.splice(&rest)
}

// splice moves every element of other to the end of l and leaves other empty.
func (l *List[T]) splice(other *List[T]) {
	if other.head == nil {
		return
	}

	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
	}
	l.tail = other.tail

	other.head, other.tail = nil, nil
}

// Free releases the elements from the last to the first, calling destroy
// (if not nil) on each value before its cell is dropped.
// The list is empty afterwards.
func (l *List[T]) Free(destroy func(T)) {
	free(l.head, destroy)
	l.head, l.tail = nil, nil
}

func free[T any](e *Element[T], destroy func(T)) {
	if e == nil {
		return
	}

	free(e.next, destroy)

	if destroy != nil {
		destroy(e.Value)
	}

	var zero T
	e.Value = zero
	e.next = nil
}

// Ascending compares ordered values: numbers numerically and strings byte-wise.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}
