package merkle

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"sort"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var ErrUnknownHasher = errors.New("unknown hash algorithm")

// Hasher maps an arbitrary byte sequence to a fixed-length Digest.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Name() string
	Size() int
	Sum(data []byte) Digest
}

type pooledHasher struct {
	name string
	size int
	pool sync.Pool
}

// NewHasher adapts a hash.Hash constructor into a Hasher. Instances are
// pooled so Sum can be called from several goroutines.
func NewHasher(name string, size int, fn func() hash.Hash) Hasher {
	h := &pooledHasher{name: name, size: size}
	h.pool.New = func() interface{} {
		return fn()
	}
	return h
}

func (h *pooledHasher) Name() string { return h.name }
func (h *pooledHasher) Size() int    { return h.size }

func (h *pooledHasher) Sum(data []byte) Digest {
	hf := h.pool.Get().(hash.Hash)
	hf.Write(data)
	sum := hf.Sum(make([]byte, 0, h.size))
	hf.Reset()
	h.pool.Put(hf)
	return sum
}

type sumHasher struct {
	name string
	sum  func([]byte) [32]byte
}

func (h sumHasher) Name() string { return h.name }
func (h sumHasher) Size() int    { return 32 }

func (h sumHasher) Sum(data []byte) Digest {
	s := h.sum(data)
	return s[:]
}

var (
	// SHA256 is the default hasher and reproduces the reference roots.
	SHA256 Hasher = sumHasher{name: "sha256", sum: sha256.Sum256}

	SHA3_256   Hasher = sumHasher{name: "sha3-256", sum: sha3.Sum256}
	BLAKE2b256 Hasher = sumHasher{name: "blake2b-256", sum: blake2b.Sum256}
	BLAKE3     Hasher = sumHasher{name: "blake3", sum: blake3.Sum256}
)

var hashers = map[string]Hasher{
	SHA256.Name():     SHA256,
	SHA3_256.Name():   SHA3_256,
	BLAKE2b256.Name(): BLAKE2b256,
	BLAKE3.Name():     BLAKE3,
}

// HasherByName looks up one of the built-in hashers.
func HasherByName(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
	return h, nil
}

// HasherNames lists the built-in hasher names in sorted order.
func HasherNames() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
