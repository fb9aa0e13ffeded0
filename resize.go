package linkedmap

const bucketBytes = 4 // one int32 head per slot

const maxCapacity = 1 << 30

func roundUpPowerOfTwo(x int) int {
	n := 1
	for n < x {
		n <<= 1
	}
	return n
}

func (t *Table[K, V]) thresholdFor(capacity int) int {
	return int(float64(capacity)*t.conf.MaxLoadFactor + 0.5)
}

// growForInsert grows to the next power of two >= double the current
// capacity, or further when a single doubling still cannot satisfy the
// load factor for one more entry
func (t *Table[K, V]) growForInsert() error {
	newCapacity := 2 * len(t.buckets)
	for newCapacity < maxCapacity && t.count+1 > t.thresholdFor(newCapacity) {
		newCapacity *= 2
	}
	return t.Resize(newCapacity)
}

// Resize grows the bucket array to newCapacity, rounded up to a power of
// two with a floor of 1 and a ceiling of 1<<30. Capacities not larger than
// the current one are a no-op. Every live entry is re-bucketed into fresh
// chains by walking the order list; order links are untouched, so the
// iteration order survives any resize. On allocator refusal the table is
// left exactly as before and the error is returned.
func (t *Table[K, V]) Resize(newCapacity int) error {
	if newCapacity < 1 {
		newCapacity = 1
	} else if newCapacity >= maxCapacity {
		newCapacity = maxCapacity
	} else {
		newCapacity = roundUpPowerOfTwo(newCapacity)
	}

	if newCapacity <= len(t.buckets) {
		return nil
	}

	if err := t.conf.Allocator.Grow(newCapacity * bucketBytes); err != nil {
		return err
	}

	buckets := make([]int32, newCapacity)
	for i := range buckets {
		buckets[i] = nilIndex
	}
	mask := uint32(newCapacity - 1)

	for index := t.order.head; index != nilIndex; index = t.arena.at(index).order.next {
		e := t.arena.at(index)
		slot := e.hash & mask
		head := buckets[slot]

		e.bucket.next = head
		e.bucket.prev = nilIndex
		if head != nilIndex {
			t.arena.at(head).bucket.prev = index
		}
		buckets[slot] = index
	}

	if t.buckets != nil {
		t.conf.Allocator.Release(len(t.buckets) * bucketBytes)
	}
	t.buckets = buckets
	t.mask = mask
	t.threshold = t.thresholdFor(newCapacity)
	return nil
}
