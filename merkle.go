// Package merkle computes the Merkle root of an ordered set of leaves.
//
// Leaves are hashed to form the bottom layer. Each layer is then folded
// pairwise into the next until one digest remains. A parent is the hash of
// the hex encodings of its children concatenated left to right, and a layer
// of odd length has its last digest duplicated before pairing.
//
// Duplicating the last node means the leaf sets [a b c] and [a b c c] share
// a root. Do not use this construction where that ambiguity matters without
// a domain-separated padding scheme on top.
package merkle

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyInput         = errors.New("cannot compute a root with no leaves")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
)

// LayerHook observes each layer as it is produced, leaves first. The slice
// is only valid for the duration of the call.
type LayerHook func(level int, layer []Digest)

// Builder folds leaves into a root using a configurable Hasher.
// A Builder holds no per-call state and may be shared between goroutines.
type Builder struct {
	hasher      Hasher
	concurrency int
	hook        LayerHook
}

type Option func(*Builder)

// WithHasher selects the hash algorithm. The default is SHA256.
func WithHasher(h Hasher) Option {
	return func(b *Builder) {
		b.hasher = h
	}
}

// WithConcurrency splits the work inside each layer across n goroutines.
// The root is the same for every n.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

func WithLayerHook(fn LayerHook) Option {
	return func(b *Builder) {
		b.hook = fn
	}
}

// NewBuilder creates a Builder with the given options applied.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		hasher:      SHA256,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.concurrency < 1 {
		return nil, ErrInvalidConcurrency
	}
	if b.hasher == nil {
		b.hasher = SHA256
	}
	return b, nil
}

var defaultBuilder = &Builder{hasher: SHA256, concurrency: 1}

// Root returns the SHA-256 Merkle root of leaves.
func Root(leaves [][]byte) (Digest, error) {
	return defaultBuilder.Root(leaves)
}

// Hasher returns the hash algorithm used by b.
func (b *Builder) Hasher() Hasher {
	return b.hasher
}

// Root returns the Merkle root of leaves. Leaves are read but never modified.
func (b *Builder) Root(leaves [][]byte) (Digest, error) {
	n := len(leaves)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// Two buffers alternate between the current and the next layer. The
	// extra slot in each leaves room for the odd-length duplicate.
	cur := make([]Digest, n, n+1)
	spare := make([]Digest, 0, (n+1)/2+1)

	b.run(n, func(lo, hi int, _ []byte) {
		for i := lo; i < hi; i++ {
			cur[i] = b.hasher.Sum(leaves[i])
		}
	})

	for level := 0; ; level++ {
		if b.hook != nil {
			b.hook(level, cur)
		}
		if len(cur) == 1 {
			return cur[0], nil
		}

		if len(cur)%2 == 1 {
			cur = append(cur, cur[len(cur)-1])
		}

		next := spare[:len(cur)/2]
		b.run(len(next), func(lo, hi int, scratch []byte) {
			for i := lo; i < hi; i++ {
				next[i] = b.combine(scratch, cur[2*i], cur[2*i+1])
			}
		})
		spare, cur = cur[:0], next
	}
}

// Combine returns the parent digest of left and right.
func (b *Builder) Combine(left, right Digest) Digest {
	return b.combine(nil, left, right)
}

func (b *Builder) combine(scratch []byte, left, right Digest) Digest {
	buf := appendEncoded(scratch[:0], left)
	buf = appendEncoded(buf, right)
	return b.hasher.Sum(buf)
}

// run calls fn over [0, n) split into contiguous chunks, one per goroutine,
// and returns once every chunk is done. Each chunk gets its own scratch
// buffer for encoding children.
func (b *Builder) run(n int, fn func(lo, hi int, scratch []byte)) {
	scratchLen := 4 * b.hasher.Size()
	workers := b.concurrency
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n, make([]byte, 0, scratchLen))
		return
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			fn(lo, hi, make([]byte, 0, scratchLen))
			return nil
		})
	}
	// Every chunk returns nil; Wait is the barrier between layers.
	_ = g.Wait()
}
