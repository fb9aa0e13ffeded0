package linkedmap

import "unsafe"

// nilIndex terminates bucket chains, the order list and the free list
const nilIndex = int32(-1)

const entryBlockSize = 64

type links struct {
	next int32
	prev int32
}

// entry is a live key/value pair together with its two link roles. Entries
// are addressed by stable int32 indices into the arena, so rehashing and
// reordering are index rewrites.
type entry[K any, V any] struct {
	hash   uint32
	bucket links // chain within one bucket slot
	order  links // global order list

	key   K
	value V
}

// entryArena owns the entry storage. Freed entries are threaded through
// their bucket.next field into a free list and reused before the arena
// grows by another block.
type entryArena[K any, V any] struct {
	entries  []entry[K, V]
	freeHead int32

	allocator  Allocator
	entryBytes int
}

func newEntryArena[K any, V any](allocator Allocator) entryArena[K, V] {
	var e entry[K, V]
	return entryArena[K, V]{
		freeHead:   nilIndex,
		allocator:  allocator,
		entryBytes: int(unsafe.Sizeof(e)),
	}
}

func (a *entryArena[K, V]) at(index int32) *entry[K, V] {
	return &a.entries[index]
}

// alloc returns the index of a zeroed entry. Growing by a new block is
// subject to the allocator; on refusal nothing changes.
func (a *entryArena[K, V]) alloc() (int32, error) {
	if a.freeHead == nilIndex {
		if err := a.allocator.Grow(entryBlockSize * a.entryBytes); err != nil {
			return nilIndex, err
		}
		base := int32(len(a.entries))
		a.entries = append(a.entries, make([]entry[K, V], entryBlockSize)...)
		for i := base + entryBlockSize - 1; i >= base; i-- {
			a.entries[i].bucket.next = a.freeHead
			a.freeHead = i
		}
	}

	index := a.freeHead
	a.freeHead = a.entries[index].bucket.next
	a.entries[index] = entry[K, V]{}
	return index, nil
}

// free zeroes the entry, dropping key/value references, and pushes it onto
// the free list
func (a *entryArena[K, V]) free(index int32) {
	a.entries[index] = entry[K, V]{}
	a.entries[index].bucket.next = a.freeHead
	a.freeHead = index
}

// reset empties the arena while keeping the allocated blocks for reuse
func (a *entryArena[K, V]) reset() {
	a.freeHead = nilIndex
	for i := int32(len(a.entries)) - 1; i >= 0; i-- {
		a.entries[i] = entry[K, V]{}
		a.entries[i].bucket.next = a.freeHead
		a.freeHead = i
	}
}

// release drops every block and reports the freed bytes to the allocator
func (a *entryArena[K, V]) release() {
	a.allocator.Release(len(a.entries) * a.entryBytes)
	a.entries = nil
	a.freeHead = nilIndex
}
