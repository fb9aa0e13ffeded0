package linkedmap

const defaultCapacity = 16
const defaultLoadFactor = 0.75

// Config holds the construction-time configuration of a table. All fields
// are fixed for the table's lifetime once created.
//
// Finalizers make ownership explicit: the table holds non-owning
// references by default and only assumes responsibility for destroying a
// key or value when the corresponding finalizer is set. Finalizers run at
// entry-destruction points: overwrite (value only), Delete, Clear,
// eviction and Destroy.
type Config[K any, V any] struct {
	// InitialCapacity is the starting bucket count, rounded up to a power
	// of two. Zero or negative uses 16.
	InitialCapacity int

	// MaxLoadFactor is the resize trigger threshold. Values <= 0 use 0.75,
	// values > 1 are clamped to 1.
	MaxLoadFactor float64

	// AutoResize doubles the bucket array whenever an insert would push
	// the load factor above MaxLoadFactor.
	AutoResize bool

	// AccessOrder moves an entry to the newest end of the order list on
	// every successful Get, instead of keeping insertion order.
	AccessOrder bool

	KeyFinalizer   func(key K)
	ValueFinalizer func(value V)

	// Allocator provides memory for buckets and entries. Nil uses the Go
	// heap without bounds.
	Allocator Allocator

	Evictor        EvictorFunc[K, V]
	EvictionPolicy EvictionPolicy
}

func computeConfig[K any, V any](conf Config[K, V]) Config[K, V] {
	if conf.InitialCapacity <= 0 {
		conf.InitialCapacity = defaultCapacity
	}
	if conf.MaxLoadFactor <= 0 {
		conf.MaxLoadFactor = defaultLoadFactor
	} else if conf.MaxLoadFactor > 1.0 {
		conf.MaxLoadFactor = 1.0
	}
	if conf.Allocator == nil {
		conf.Allocator = heapAllocator{}
	}
	return conf
}
