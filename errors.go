// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import "code.hybscloud.com/iox"

// ErrEmpty indicates a dequeue found no element. Returned by the Try*
// variants of the dequeue operations; the boolean-returning forms
// (SCDequeue, MCDequeue, ...) signal the same condition with a false
// result and no error value.
//
// ErrEmpty is a control flow signal, not a failure. This is an alias for
// [iox.ErrWouldBlock] for ecosystem consistency with the bounded queues
// in [code.hybscloud.com/lfq].
var ErrEmpty = iox.ErrWouldBlock

// ErrContended indicates a non-spinning multi-consumer dequeue
// (MCDequeueLight) lost a race for the tail to another consumer. The
// caller may retry; the queue may or may not be empty.
var ErrContended = iox.ErrWouldBlock

// IsEmpty reports whether err indicates the queue had no element to
// dequeue. Delegates to [iox.IsWouldBlock] for wrapped error support.
// ErrContended is the same value as ErrEmpty, so IsEmpty also reports
// true for it.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil, ErrEmpty, or ErrContended. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
