// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ulq provides lock-free unbounded FIFO queues for high-throughput
// producer/consumer coordination between goroutines.
//
// The package offers two components:
//
//   - [ULQ]: an unbounded multi-producer multi-consumer linked-list queue,
//     with single- and multi-producer enqueue and single-, multi-, and
//     light (non-spinning) multi-consumer dequeue.
//   - [SAQ]: a sharded adaptive queue wrapping N independent ULQ
//     subqueues, with deterministic producer routing and a per-consumer
//     learned polling order (the "hitlist").
//
// # Quick Start
//
//	q := ulq.NewULQ[Event]()
//	q.MPEnqueue(ev)
//	ev, ok := q.MCDequeue()
//
//	saq := ulq.NewSAQ[Job](8)
//	producer := saq.NewProducer()
//	producer.Enqueue(job)
//
//	consumer := saq.NewConsumer()
//	job, ok := consumer.MCDequeue()
//
// # Basic Usage
//
// ULQ never blocks and never fails with an error kind: emptiness and
// dequeue contention are both expressed as a boolean result.
//
//	q := ulq.NewULQ[int]()
//
//	q.MPEnqueue(42)
//
//	v, ok := q.MCDequeue()
//	if !ok {
//	    // queue was empty
//	}
//
// # Producer/Consumer Patterns
//
// Pipeline Stage (single producer, single consumer):
//
//	q := ulq.NewULQ[Data]()
//
//	go func() { // Producer
//	    for data := range input {
//	        q.SPEnqueue(data)
//	    }
//	}()
//
//	go func() { // Consumer
//	    for {
//	        data, ok := q.SCDequeue()
//	        if !ok {
//	            runtime.Gosched()
//	            continue
//	        }
//	        process(data)
//	    }
//	}()
//
// Event Aggregation (multiple producers, single consumer):
//
//	q := ulq.NewULQ[Event]()
//
//	for sensor := range sensors {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.MPEnqueue(ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() {
//	    for {
//	        if ev, ok := q.SCDequeue(); ok {
//	            aggregate(ev)
//	        }
//	    }
//	}()
//
// Worker Pool (multiple producers, multiple consumers, via [SAQ]):
//
//	saq := ulq.NewSAQ[Job](runtime.GOMAXPROCS(0))
//
//	for range numWorkers {
//	    go func() {
//	        consumer := saq.NewConsumer()
//	        for {
//	            if job, ok := consumer.MCDequeue(); ok {
//	                job.Run()
//	            }
//	        }
//	    }()
//	}
//
//	// Submit jobs from anywhere
//	producer := saq.NewProducer()
//	producer.Enqueue(job)
//
// # Thread Affinity
//
// Go has no thread-local storage and goroutines are not pinned to OS
// threads, so the producer-affine subqueue index and the per-consumer
// hitlist are modelled as explicit handles ([Producer], [Consumer])
// instead of implicit thread-local state. Obtain one handle per producer
// or consumer goroutine at goroutine entry and reuse it for that
// goroutine's lifetime — this reproduces "thread caches an index/hitlist
// on first use" without any hidden goroutine-ID lookup.
//
// # Error Handling
//
// The boolean-returning operations ([ULQ.SCDequeue], [ULQ.MCDequeue],
// [ULQ.MCDequeueLight], [Consumer.SCDequeue], [Consumer.MCDequeue]) are
// the primary API. For callers that want [code.hybscloud.com/iox]-style
// error classification, TryXxx variants return (T, error) using [ErrEmpty]
// and [ErrContended]:
//
//	v, err := q.TrySCDequeue()
//	if ulq.IsEmpty(err) {
//	    // queue was empty
//	}
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established through atomic memory orderings (acquire-release
// semantics). ULQ and SAQ use acquire/release/acq-rel atomics on pointer
// words to establish ordering the detector cannot see; the algorithms are
// correct, but stress tests exercising cross-goroutine node handoff skip
// themselves under -race by checking [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering (including pointer links), and [code.hybscloud.com/spin] for
// the yield-spin in MCDequeue's tail-acquisition loop.
package ulq
