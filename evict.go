package linkedmap

// EvictorFunc decides, after every completed Put, whether the oldest entry
// in the order list should be removed. It receives the table and the
// current entry count. The table must not be mutated from inside the
// evictor beyond what the eviction protocol itself performs.
type EvictorFunc[K any, V any] func(t *Table[K, V], count int) bool

// EvictionPolicy selects how often the evictor is consulted per Put
type EvictionPolicy int

const (
	// EvictRepeat consults the evictor again after each removal,
	// until it returns false
	EvictRepeat EvictionPolicy = iota

	// EvictSingle consults the evictor exactly once per Put,
	// removing at most one entry
	EvictSingle
)

// MaxEntries returns an evictor enforcing count <= limit, the common
// bounded-cache policy
func MaxEntries[K any, V any](limit int) EvictorFunc[K, V] {
	return func(_ *Table[K, V], count int) bool {
		return count > limit
	}
}

func (t *Table[K, V]) runEvictor() {
	if t.conf.Evictor == nil {
		return
	}
	for t.count > 0 && t.conf.Evictor(t, t.count) {
		t.removeAt(t.order.head)
		if t.conf.EvictionPolicy == EvictSingle {
			return
		}
	}
}
