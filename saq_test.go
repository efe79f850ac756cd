// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ulq"
)

// TestSAQConstruction checks the shard count reported by a new queue.
func TestSAQConstruction(t *testing.T) {
	q := ulq.NewSAQ[int](4)
	if got := q.Shards(); got != 4 {
		t.Fatalf("Shards: got %d, want 4", got)
	}
}

func TestSAQNewPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewSAQ(0): expected panic, got none")
		}
	}()
	ulq.NewSAQ[int](0)
}

// TestSAQPerProducerFIFO covers the per-producer FIFO property: a single
// producer's values come back out in submission order, since they all
// land on the same pinned subqueue.
func TestSAQPerProducerFIFO(t *testing.T) {
	q := ulq.NewSAQ[int](4)
	producer := q.NewProducer()
	for i := range 1000 {
		producer.Enqueue(i)
	}

	consumer := q.NewConsumer()
	for i := range 1000 {
		v, ok := consumer.SCDequeue()
		if !ok {
			t.Fatalf("element %d: unexpected empty", i)
		}
		if v != i {
			t.Fatalf("element %d: got %d, want %d", i, v, i)
		}
	}
}

// TestSAQEnqueueAt checks the explicit-index enqueue bypasses producer
// auto-assignment and lands in the named subqueue.
func TestSAQEnqueueAt(t *testing.T) {
	q := ulq.NewSAQ[string](3)
	q.EnqueueAt("to-shard-2", 2)

	if _, ok := q.SCDequeueAt(0); ok {
		t.Fatalf("shard 0: expected empty")
	}
	if _, ok := q.SCDequeueAt(1); ok {
		t.Fatalf("shard 1: expected empty")
	}
	v, ok := q.SCDequeueAt(2)
	if !ok || v != "to-shard-2" {
		t.Fatalf("shard 2: got (%q, %v), want (\"to-shard-2\", true)", v, ok)
	}
}

// TestSAQHitlistAdaptation covers scenario 4: with N=4 subqueues and a
// single producer pinned to index 2, the warmup hit promotes subqueue 2 to
// the front of the consumer's hitlist, so from then on it is polled before
// subqueue 0.
func TestSAQHitlistAdaptation(t *testing.T) {
	q := ulq.NewSAQ[int](4)
	q.NewProducer()
	q.NewProducer()
	producer := q.NewProducer()
	if got := producer.Index(); got != 2 {
		t.Fatalf("producer index: got %d, want 2", got)
	}
	consumer := q.NewConsumer()

	producer.Enqueue(1)
	if _, ok := consumer.SCDequeue(); !ok {
		t.Fatalf("warmup dequeue: expected a hit")
	}

	for i := range 100 {
		producer.Enqueue(i)
		v, ok := consumer.SCDequeue()
		if !ok || v != i {
			t.Fatalf("steady state %d: got (%d, %v)", i, v, ok)
		}
	}

	q.EnqueueAt(-1, 0)
	producer.Enqueue(1000)
	if v, ok := consumer.SCDequeue(); !ok || v != 1000 {
		t.Fatalf("after promotion: got (%d, %v), want (1000, true) from subqueue 2", v, ok)
	}
}

// TestSAQSeedHitlist exercises the Builder's SeedHitlist configuration.
func TestSAQSeedHitlist(t *testing.T) {
	q := ulq.BuildSAQ[int](ulq.New(4).SeedHitlist([]int{3, 2, 1, 0}))
	q.EnqueueAt(99, 3)

	consumer := q.NewConsumer()
	v, ok := consumer.SCDequeue()
	if !ok || v != 99 {
		t.Fatalf("got (%d, %v), want (99, true) — seeded hitlist should hit shard 3 first", v, ok)
	}
}

func TestSAQSeedHitlistPanicsOnBadPermutation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("SeedHitlist with invalid permutation: expected panic")
		}
	}()
	ulq.New(4).SeedHitlist([]int{0, 0, 1, 2})
}

// TestSAQMPMCConservation drives multiple producers and consumers through
// the sharded queue and checks the union of dequeued values against the
// full expected range, exercising both the two-pass MCDequeue and the
// freelist-backed ULQ core underneath it.
func TestSAQMPMCConservation(t *testing.T) {
	if ulq.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const (
		numProducers  = 4
		numConsumers  = 4
		itemsPerProd  = 50_000
		expectedTotal = numProducers * itemsPerProd
	)

	q := ulq.NewSAQ[int](8)
	seen := make([]atomix.Int32, expectedTotal)
	var consumed atomix.Int64

	var wg sync.WaitGroup
	for p := range numProducers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			producer := q.NewProducer()
			base := id * itemsPerProd
			for i := range itemsPerProd {
				producer.Enqueue(base + i)
			}
		}(p)
	}

	var consumerWg sync.WaitGroup
	deadline := time.Now().Add(60 * time.Second)
	for range numConsumers {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			consumer := q.NewConsumer()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(expectedTotal) {
				if time.Now().After(deadline) {
					return
				}
				v, ok := consumer.MCDequeue()
				if !ok {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if v < 0 || v >= expectedTotal {
					t.Errorf("value out of range: %d", v)
					continue
				}
				seen[v].Add(1)
				consumed.Add(1)
			}
		}()
	}

	wg.Wait()
	consumerWg.Wait()

	if got := consumed.Load(); got != int64(expectedTotal) {
		t.Fatalf("consumed %d elements, want %d", got, expectedTotal)
	}
	for i := range seen {
		if count := seen[i].Load(); count != 1 {
			t.Fatalf("value %d dequeued %d times, want exactly 1", i, count)
		}
	}
}

// TestSAQClose exercises SAQ.Close draining every subqueue.
func TestSAQClose(t *testing.T) {
	q := ulq.NewSAQ[int](4)
	producer := q.NewProducer()
	for i := range 40 {
		producer.Enqueue(i)
	}
	consumer := q.NewConsumer()
	for i := 0; i < 20; i++ {
		if _, ok := consumer.SCDequeue(); !ok {
			t.Fatalf("draining half: unexpected empty at %d", i)
		}
	}
	q.Close()
}
