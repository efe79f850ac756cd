// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// Options configures sharded adaptive queue creation.
type Options struct {
	shards      int
	seedHitlist []int
}

// Builder creates a [SAQ] with fluent configuration.
//
// Example:
//
//	q := ulq.BuildSAQ[Event](ulq.New(8))
type Builder struct {
	opts Options
}

// New creates a builder for a sharded adaptive queue with n subqueues.
// Panics if n < 1.
func New(n int) *Builder {
	if n < 1 {
		panic("ulq: subqueue count must be >= 1")
	}
	return &Builder{opts: Options{shards: n}}
}

// SeedHitlist overrides the initial consumer hitlist permutation that
// every [Consumer] created from the built queue starts from, instead of
// the identity permutation [0, 1, ..., n-1]. Primarily useful in tests
// that want to assert on hitlist promotion without relying on the default
// starting order. Must be a permutation of [0, n); panics otherwise.
func (b *Builder) SeedHitlist(order []int) *Builder {
	seen := make([]bool, b.opts.shards)
	if len(order) != b.opts.shards {
		panic("ulq: SeedHitlist length must equal shard count")
	}
	for _, idx := range order {
		if idx < 0 || idx >= b.opts.shards || seen[idx] {
			panic("ulq: SeedHitlist must be a permutation of [0, shards)")
		}
		seen[idx] = true
	}
	b.opts.seedHitlist = append([]int(nil), order...)
	return b
}

// BuildSAQ creates a *SAQ[T] from the builder's configuration.
func BuildSAQ[T any](b *Builder) *SAQ[T] {
	q := NewSAQ[T](b.opts.shards)
	if b.opts.seedHitlist != nil {
		q.seedHitlist = append([]int(nil), b.opts.seedHitlist...)
	}
	return q
}
