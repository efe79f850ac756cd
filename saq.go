// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import "code.hybscloud.com/atomix"

// SAQ is a sharded adaptive queue: a fixed-size array of independent ULQ
// subqueues. Producers are routed deterministically to one subqueue each;
// consumers scan subqueues in a per-consumer order learned from observed
// dequeue hits (the "hitlist"), so a consumer drawn toward one subqueue
// amortises its lookup to a single underlying call in the steady state.
//
// SAQ never allocates beyond what its underlying ULQs allocate, and has
// no failure mode beyond "empty".
//
// The zero value is not usable; construct with [NewSAQ].
type SAQ[T any] struct {
	shards      []saqShard[T]
	nextIndex   atomix.Uint64
	seedHitlist []int

	noCopy noCopy
}

type saqShard[T any] struct {
	_ pad
	q *ULQ[T]
	_ pad
}

// NewSAQ creates a sharded adaptive queue with n independent subqueues.
// Panics if n < 1.
func NewSAQ[T any](n int) *SAQ[T] {
	if n < 1 {
		panic("ulq: subqueue count must be >= 1")
	}
	q := &SAQ[T]{shards: make([]saqShard[T], n)}
	for i := range q.shards {
		q.shards[i].q = NewULQ[T]()
	}
	return q
}

// Shards returns the number of subqueues.
func (q *SAQ[T]) Shards() int {
	return len(q.shards)
}

// EnqueueAt appends v directly to the subqueue at index, bypassing
// producer auto-assignment. index must be in [0, Shards()).
func (q *SAQ[T]) EnqueueAt(v T, index int) {
	q.shards[index].q.MPEnqueue(v)
}

// Producer is a handle obtained from [SAQ.NewProducer], caching the
// subqueue index assigned to one producer goroutine for that goroutine's
// lifetime. Go has no thread-local storage and goroutines are not pinned
// to OS threads, so thread-affine producer routing is modelled explicitly:
// obtain one Producer per producer goroutine at goroutine entry and reuse
// it for every subsequent enqueue from that goroutine.
type Producer[T any] struct {
	q     *SAQ[T]
	index int
}

// NewProducer assigns the next subqueue index, round-robin, and returns a
// handle that routes every future enqueue from its owning goroutine to
// that subqueue.
func (q *SAQ[T]) NewProducer() *Producer[T] {
	idx := int(q.nextIndex.AddAcqRel(1)-1) % len(q.shards)
	return &Producer[T]{q: q, index: idx}
}

// Enqueue appends v to this producer's assigned subqueue.
func (p *Producer[T]) Enqueue(v T) {
	p.q.shards[p.index].q.MPEnqueue(v)
}

// Index returns the subqueue index this producer was assigned.
func (p *Producer[T]) Index() int {
	return p.index
}

// Consumer is a handle obtained from [SAQ.NewConsumer], caching one
// consumer goroutine's learned subqueue poll order (the hitlist). Obtain
// one Consumer per consumer goroutine at goroutine entry and reuse it for
// every subsequent dequeue from that goroutine.
type Consumer[T any] struct {
	q       *SAQ[T]
	hitlist []int
}

// NewConsumer returns a handle whose hitlist starts at the identity
// permutation [0, 1, ..., Shards()-1], or at the queue's seeded order if
// one was configured via [Builder.SeedHitlist].
func (q *SAQ[T]) NewConsumer() *Consumer[T] {
	hitlist := make([]int, len(q.shards))
	if q.seedHitlist != nil {
		copy(hitlist, q.seedHitlist)
	} else {
		for i := range hitlist {
			hitlist[i] = i
		}
	}
	return &Consumer[T]{q: q, hitlist: hitlist}
}

// promote moves the subqueue at position hit to the front of the
// hitlist by swapping every element from the front up to (not including)
// hit with the hit slot — a full rotation of the prefix, not a single
// adjacent swap, so the previous front-runners keep their relative order
// behind the newly promoted index.
func (c *Consumer[T]) promote(hit int) {
	for i := 0; i < hit; i++ {
		c.hitlist[i], c.hitlist[hit] = c.hitlist[hit], c.hitlist[i]
	}
}

// SCDequeue walks the hitlist once, attempting a single-consumer dequeue
// on each subqueue, and returns the first hit. The caller must guarantee
// no other consumer runs concurrently on any subqueue this handle visits.
func (c *Consumer[T]) SCDequeue() (v T, ok bool) {
	for i, idx := range c.hitlist {
		if v, ok = c.q.shards[idx].q.SCDequeue(); ok {
			c.promote(i)
			return v, true
		}
	}
	return v, false
}

// SCDequeueAt performs a single-consumer dequeue on one specific
// subqueue, bypassing the hitlist scan.
func (q *SAQ[T]) SCDequeueAt(index int) (v T, ok bool) {
	return q.shards[index].q.SCDequeue()
}

// MCDequeue walks the hitlist in two passes: a first pass using the
// non-spinning MCDequeueLight on each subqueue to skim for easy wins
// without paying spin cost, then a second pass using the spinning
// MCDequeue to wait out contention. The hitlist is updated on success
// within either pass, and the dequeue returns on the first hit.
func (c *Consumer[T]) MCDequeue() (v T, ok bool) {
	for i, idx := range c.hitlist {
		if v, ok = c.q.shards[idx].q.MCDequeueLight(); ok {
			c.promote(i)
			return v, true
		}
	}
	for i, idx := range c.hitlist {
		if v, ok = c.q.shards[idx].q.MCDequeue(); ok {
			c.promote(i)
			return v, true
		}
	}
	return v, false
}

// MCDequeueAt performs a multi-consumer dequeue on one specific subqueue,
// bypassing the hitlist scan.
func (q *SAQ[T]) MCDequeueAt(index int) (v T, ok bool) {
	return q.shards[index].q.MCDequeue()
}

// Close drains every subqueue and releases every node. The caller must
// ensure no other goroutine is operating on the queue.
func (q *SAQ[T]) Close() {
	for i := range q.shards {
		q.shards[i].q.Close()
	}
}
