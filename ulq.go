// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// ULQ is an unbounded multi-producer multi-consumer lock-free FIFO queue.
//
// It is implemented as a Michael-Scott-style singly linked list: tail is
// a sentinel whose successor is the first readable element, head is the
// most recently enqueued node. Retired nodes are recycled through an
// embedded freelist instead of being freed, amortising allocation under
// steady-state load.
//
// ULQ never blocks or allocates beyond what a fresh node requires. Any
// combination of SP/MP enqueue and SC/MC dequeue may be mixed on the same
// instance, but callers choosing the single-producer or single-consumer
// forms must themselves guarantee no concurrent peer calls the same side.
//
// The zero value is not usable; construct with [NewULQ]. Copying a ULQ is
// not safe; always pass by pointer.
type ULQ[T any] struct {
	_    pad
	tail atomix.Pointer[node[T]]
	_    pad
	head atomix.Pointer[node[T]]
	_    pad
	free freelist[T]

	noCopy noCopy
}

// noCopy enables `go vet`'s copylock diagnostic to catch accidental
// copies of ULQ, which must not be copied after construction.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewULQ creates an empty unbounded queue: one sentinel pinned at the
// front of the main list, one sentinel pinned at the front of the
// freelist.
func NewULQ[T any]() *ULQ[T] {
	q := &ULQ[T]{}
	sentinel := &node[T]{}
	q.tail.StoreRelaxed(sentinel)
	q.head.StoreRelaxed(sentinel)
	q.free.init(&node[T]{})
	return q
}

// acquireOrAllocate pops a node from the freelist, or allocates a fresh
// one if the freelist has nothing to give.
func (q *ULQ[T]) acquireOrAllocate(v T) *node[T] {
	n := q.free.pop()
	if n == nil {
		n = &node[T]{}
	}
	n.data = v
	n.next.StoreRelaxed(nil)
	return n
}

// SPEnqueue appends v. The caller must guarantee no other producer runs
// concurrently on this ULQ.
func (q *ULQ[T]) SPEnqueue(v T) {
	n := q.acquireOrAllocate(v)
	q.head.LoadRelaxed().next.StoreRelease(n)
	q.head.StoreRelaxed(n)
}

// MPEnqueue appends v. Safe under arbitrary producer concurrency.
func (q *ULQ[T]) MPEnqueue(v T) {
	n := q.acquireOrAllocate(v)
	prevHead := q.head.SwapAcqRel(n)
	prevHead.next.StoreRelease(n)
}

// SCDequeue removes the front element, if any. The caller must guarantee
// no other consumer runs concurrently on this ULQ.
func (q *ULQ[T]) SCDequeue() (v T, ok bool) {
	tail := q.tail.LoadRelaxed()
	next := tail.next.LoadAcquire()
	if next == nil {
		return v, false
	}
	v = next.data
	var zero T
	next.data = zero
	q.tail.StoreRelease(next)
	q.free.push(tail)
	return v, true
}

// MCDequeue removes the front element, if any. Safe under arbitrary
// consumer concurrency; spins and yields the scheduling quantum while
// another consumer holds the tail.
func (q *ULQ[T]) MCDequeue() (v T, ok bool) {
	sw := spin.Wait{}
	var tail *node[T]
	for {
		tail = q.tail.SwapAcqRel(nil)
		if tail != nil {
			break
		}
		sw.Once()
	}

	next := tail.next.LoadAcquire()
	if next == nil {
		q.tail.SwapAcqRel(tail)
		return v, false
	}
	v = next.data
	var zero T
	next.data = zero
	q.tail.StoreRelease(next)
	q.free.push(tail)
	return v, true
}

// MCDequeueLight removes the front element, if any. Safe under arbitrary
// consumer concurrency; never spins — a single failed attempt to take the
// tail returns false immediately, indistinguishable from an empty queue.
func (q *ULQ[T]) MCDequeueLight() (v T, ok bool) {
	tail := q.tail.SwapAcqRel(nil)
	if tail == nil {
		return v, false
	}

	next := tail.next.LoadAcquire()
	if next == nil {
		q.tail.SwapAcqRel(tail)
		return v, false
	}
	v = next.data
	var zero T
	next.data = zero
	q.tail.StoreRelease(next)
	q.free.push(tail)
	return v, true
}

// Close drains the queue and unlinks every recycled node from the
// freelist, leaving one sentinel in each list. The caller must ensure no
// other goroutine is operating on the queue, concurrently or subsequently.
func (q *ULQ[T]) Close() {
	for {
		if _, ok := q.SCDequeue(); !ok {
			break
		}
	}
	q.free.drain()
}
