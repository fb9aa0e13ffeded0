package linkedmap

// Table maps keys to values through a chained hash table and additionally
// maintains a total order over all entries: insertion order, or most
// recently accessed order when Config.AccessOrder is set. An optional
// evictor consulted after every Put turns the table into a bounded cache.
//
// Keys and values are never copied; the table stores what the caller
// supplies and only invokes the configured finalizers at entry-destruction
// points. A Table is not safe for concurrent use: callers requiring
// concurrency must guard every operation, including iteration, externally.
type Table[K any, V any] struct {
	conf Config[K, V]

	hash   HashFunc[K]
	equals EqualsFunc[K]

	buckets []int32 // head entry index per slot, nilIndex when empty
	mask    uint32

	arena entryArena[K, V]
	order listRoot

	count     int
	threshold int
}

// New creates a table with the given key hashing/equality pair. It fails
// only when the allocator refuses memory for the bucket array.
func New[K any, V any](
	hash HashFunc[K],
	equals EqualsFunc[K],
	conf Config[K, V],
) (*Table[K, V], error) {
	conf = computeConfig(conf)

	t := &Table[K, V]{
		conf:   conf,
		hash:   hash,
		equals: equals,
		arena:  newEntryArena[K, V](conf.Allocator),
		order:  emptyListRoot(),
	}

	if err := t.Resize(conf.InitialCapacity); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table[K, V]) find(hv uint32, key K) int32 {
	index := t.buckets[hv&t.mask]
	for index != nilIndex {
		e := t.arena.at(index)
		if e.hash == hv && t.equals(e.key, key) {
			return index
		}
		index = e.bucket.next
	}
	return nilIndex
}

func (t *Table[K, V]) bucketPush(index int32) {
	e := t.arena.at(index)
	slot := e.hash & t.mask
	head := t.buckets[slot]

	e.bucket.next = head
	e.bucket.prev = nilIndex
	if head != nilIndex {
		t.arena.at(head).bucket.prev = index
	}
	t.buckets[slot] = index
}

func (t *Table[K, V]) bucketUnlink(index int32) {
	e := t.arena.at(index)
	if e.bucket.prev != nilIndex {
		t.arena.at(e.bucket.prev).bucket.next = e.bucket.next
	} else {
		t.buckets[e.hash&t.mask] = e.bucket.next
	}
	if e.bucket.next != nilIndex {
		t.arena.at(e.bucket.next).bucket.prev = e.bucket.prev
	}
}

func (t *Table[K, V]) removeAt(index int32) {
	e := t.arena.at(index)
	t.bucketUnlink(index)
	t.orderUnlink(index)

	if t.conf.KeyFinalizer != nil {
		t.conf.KeyFinalizer(e.key)
	}
	if t.conf.ValueFinalizer != nil {
		t.conf.ValueFinalizer(e.value)
	}

	t.arena.free(index)
	t.count--
}

// Put inserts key with value. When key is already present its value is
// replaced, the old value is destroyed through the value finalizer, and
// under access order the entry moves to the newest end; the entry count
// and (in insertion-order mode) the entry position are unchanged.
//
// A new entry is appended to the newest end of the order list. When
// AutoResize is set and the insert would push the load factor above
// MaxLoadFactor, the table grows before the entry is linked, so a failed
// grow leaves the table in its pre-call state. After either path completes
// the evictor is consulted; while it signals eviction the oldest entry is
// removed exactly as by Delete.
//
// Put fails only on allocator refusal, for the new entry or a triggered
// resize; no partial entry is ever visible.
func (t *Table[K, V]) Put(key K, value V) error {
	hv := t.hash(key)

	if index := t.find(hv, key); index != nilIndex {
		e := t.arena.at(index)
		if t.conf.ValueFinalizer != nil {
			t.conf.ValueFinalizer(e.value)
		}
		e.value = value
		if t.conf.AccessOrder {
			t.orderMoveToTail(index)
		}
		t.runEvictor()
		return nil
	}

	if t.conf.AutoResize && t.count+1 > t.threshold {
		if err := t.growForInsert(); err != nil {
			return err
		}
	}

	index, err := t.arena.alloc()
	if err != nil {
		return err
	}

	e := t.arena.at(index)
	e.hash = hv
	e.key = key
	e.value = value

	t.bucketPush(index)
	t.orderPushTail(index)
	t.count++

	t.runEvictor()
	return nil
}

// Get returns the value for key. On a hit under access order the entry is
// moved to the newest end of the order list before returning. A miss is a
// normal negative result, not an error.
func (t *Table[K, V]) Get(key K) (V, bool) {
	index := t.find(t.hash(key), key)
	if index == nilIndex {
		var zero V
		return zero, false
	}
	if t.conf.AccessOrder {
		t.orderMoveToTail(index)
	}
	return t.arena.at(index).value, true
}

// Peek returns the value for key without disturbing the order list,
// regardless of the ordering mode
func (t *Table[K, V]) Peek(key K) (V, bool) {
	index := t.find(t.hash(key), key)
	if index == nilIndex {
		var zero V
		return zero, false
	}
	return t.arena.at(index).value, true
}

// Delete removes key, unlinking its entry from both the bucket chain and
// the order list and running the finalizers. It returns false without side
// effects when key is absent.
func (t *Table[K, V]) Delete(key K) bool {
	index := t.find(t.hash(key), key)
	if index == nilIndex {
		return false
	}
	t.removeAt(index)
	return true
}

// Clear destroys every entry, running the finalizers, and resets all
// bucket chains. The capacity is unchanged and entry storage is kept for
// reuse.
func (t *Table[K, V]) Clear() {
	if t.conf.KeyFinalizer != nil || t.conf.ValueFinalizer != nil {
		for index := t.order.head; index != nilIndex; {
			e := t.arena.at(index)
			next := e.order.next
			if t.conf.KeyFinalizer != nil {
				t.conf.KeyFinalizer(e.key)
			}
			if t.conf.ValueFinalizer != nil {
				t.conf.ValueFinalizer(e.value)
			}
			index = next
		}
	}

	for i := range t.buckets {
		t.buckets[i] = nilIndex
	}
	t.arena.reset()
	t.order = emptyListRoot()
	t.count = 0
}

// Destroy clears the table and returns the bucket array and entry storage
// to the allocator. The table must not be used afterward.
func (t *Table[K, V]) Destroy() {
	t.Clear()
	t.conf.Allocator.Release(len(t.buckets) * bucketBytes)
	t.arena.release()
	t.buckets = nil
	t.mask = 0
	t.threshold = 0
}

// Apply invokes fn on every entry from oldest to newest, stopping early
// the first time fn returns false. It returns the number of entries
// visited. Mutating the table from inside fn is undefined.
func (t *Table[K, V]) Apply(fn func(key K, value V) bool) int {
	visited := 0
	for index := t.order.head; index != nilIndex; index = t.arena.at(index).order.next {
		e := t.arena.at(index)
		visited++
		if !fn(e.key, e.value) {
			return visited
		}
	}
	return visited
}

// Len returns the number of live entries
func (t *Table[K, V]) Len() int {
	return t.count
}

// Capacity returns the bucket count, always a power of two
func (t *Table[K, V]) Capacity() int {
	return len(t.buckets)
}

// LoadFactor returns Len divided by Capacity
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}
