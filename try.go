// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// The boolean-returning operations (SCDequeue, MCDequeue, MCDequeueLight,
// Consumer.SCDequeue, Consumer.MCDequeue) are the primary API, matching
// the "no operation fails with an error kind" design used throughout
// this package. The TryXxx wrappers below translate the same result
// into (T, error) for callers that want [IsEmpty]/[IsSemantic]/
// [IsNonFailure] classification or
// errors.Is-style composition with other iox-based packages, mirroring
// how [code.hybscloud.com/lfq] exposes Dequeue() (T, error) alongside its
// boolean IsWouldBlock helper.

// TrySCDequeue is [ULQ.SCDequeue], reporting an empty queue as ErrEmpty.
func (q *ULQ[T]) TrySCDequeue() (T, error) {
	v, ok := q.SCDequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// TryMCDequeue is [ULQ.MCDequeue], reporting an empty queue as ErrEmpty.
func (q *ULQ[T]) TryMCDequeue() (T, error) {
	v, ok := q.MCDequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// TryMCDequeueLight is [ULQ.MCDequeueLight]. A false result may mean the
// queue is empty or that another consumer held the tail; report it as
// ErrContended since the caller should retry either way.
func (q *ULQ[T]) TryMCDequeueLight() (T, error) {
	v, ok := q.MCDequeueLight()
	if !ok {
		return v, ErrContended
	}
	return v, nil
}

// TrySCDequeue is [Consumer.SCDequeue], reporting no hit as ErrEmpty.
func (c *Consumer[T]) TrySCDequeue() (T, error) {
	v, ok := c.SCDequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// TryMCDequeue is [Consumer.MCDequeue], reporting no hit as ErrEmpty.
func (c *Consumer[T]) TryMCDequeue() (T, error) {
	v, ok := c.MCDequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}
