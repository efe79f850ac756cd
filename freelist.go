// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import "code.hybscloud.com/atomix"

// freelist is a Michael-Scott-style recycle pool for main-list nodes. It
// supports multi-producer enqueue and single-consumer dequeue; that is
// sufficient because the main queue serialises freelist producers and
// consumers through its own MP/MC discipline — each main-queue dequeue
// enqueues exactly one freelist node, and each main-queue enqueue pops at
// most one.
type freelist[T any] struct {
	_    pad
	head atomix.Pointer[node[T]]
	_    pad
	tail atomix.Pointer[node[T]]
}

// init seats a single sentinel in both lists. freeTail is published from
// freeHead with a relaxed store: the freelist is not visible to any other
// goroutine until the constructor that calls init returns, so ordinary
// construction happens-before covers the first concurrent operation.
func (f *freelist[T]) init(sentinel *node[T]) {
	f.head.StoreRelaxed(sentinel)
	f.tail.StoreRelaxed(sentinel)
}

// push recycles a retired node. Mirrors the main list's MP enqueue: clear
// the node's link, swap it in as the new head under acq-rel, then publish
// the link from the prior head with a release store.
func (f *freelist[T]) push(n *node[T]) {
	n.next.StoreRelaxed(nil)
	prevHead := f.head.SwapAcqRel(n)
	prevHead.next.StoreRelease(n)
}

// pop claims a node for reuse, or returns nil if the freelist is empty.
// Single-consumer only: the main queue's own MP/MC discipline ensures at
// most one goroutine ever calls pop concurrently with another pop.
func (f *freelist[T]) pop() *node[T] {
	n := f.tail.LoadRelaxed()
	for {
		next := n.next.LoadAcquire()
		if next == nil {
			return nil
		}
		if f.tail.CompareAndSwapRelaxed(n, next) {
			return n
		}
		n = f.tail.LoadRelaxed()
	}
}

// drain unlinks every node from the freelist except its final sentinel,
// which stays in place as both head and tail. Called only from ULQ.Close,
// after the queue is no longer shared.
func (f *freelist[T]) drain() {
	for f.pop() != nil {
	}
}
