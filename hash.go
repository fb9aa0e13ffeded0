package linkedmap

import (
	"unsafe"

	"github.com/spaolacci/murmur3"
)

// HashFunc computes a 32-bit hash code for a key
type HashFunc[K any] func(key K) uint32

// EqualsFunc reports whether two keys are equal. Keys with equal hash codes
// are still compared with this function before a bucket chain match is accepted.
type EqualsFunc[K any] func(a, b K) bool

// spread mixes the lower order bits into the higher ones,
// magic numbers from Java 1.4
func spread(h uint32) uint32 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}

// StringHash hashes string content using murmur3
func StringHash(key string) uint32 {
	return murmur3.Sum32([]byte(key))
}

// StringEquals compares string content
func StringEquals(a, b string) bool {
	return a == b
}

// IntHash hashes a fixed-width integer key
func IntHash(key int) uint32 {
	return spread(uint32(key))
}

// IntEquals ...
func IntEquals(a, b int) bool {
	return a == b
}

// Int64Hash folds a 64-bit key into 32 bits before spreading
func Int64Hash(key int64) uint32 {
	return spread(uint32(uint64(key) ^ uint64(key)>>32))
}

// Int64Equals ...
func Int64Equals(a, b int64) bool {
	return a == b
}

// PointerHash hashes the address of the pointee, giving identity semantics
// when paired with PointerEquals
func PointerHash[T any](key *T) uint32 {
	addr := uintptr(unsafe.Pointer(key))
	return spread(uint32(uint64(addr) ^ uint64(addr)>>32))
}

// PointerEquals compares pointers by address
func PointerEquals[T any](a, b *T) bool {
	return a == b
}
