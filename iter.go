package linkedmap

// Direction selects the iteration order over the order list
type Direction int

const (
	// Forward iterates from the oldest entry to the newest
	Forward Direction = 1

	// Reverse iterates from the newest entry to the oldest
	Reverse Direction = -1
)

// Iterator walks the order list in a fixed direction. Key and Value expose
// the current entry after each successful Next. Mutating the table while
// iterating is undefined: only the starting cursor is captured at init, no
// further snapshot isolation is provided.
type Iterator[K any, V any] struct {
	Key   K
	Value V

	table     *Table[K, V]
	direction Direction
	pos       int32
}

// NewIterator captures the current head (Forward) or tail (Reverse) of the
// order list as the starting cursor
func (t *Table[K, V]) NewIterator(direction Direction) *Iterator[K, V] {
	pos := t.order.head
	if direction == Reverse {
		pos = t.order.tail
	}
	return &Iterator[K, V]{
		table:     t,
		direction: direction,
		pos:       pos,
	}
}

// Next advances one position, returning false once the cursor has passed
// the opposite end
func (it *Iterator[K, V]) Next() bool {
	if it.pos == nilIndex {
		return false
	}

	e := it.table.arena.at(it.pos)
	if it.direction == Forward {
		it.pos = e.order.next
	} else {
		it.pos = e.order.prev
	}

	it.Key = e.key
	it.Value = e.value
	return true
}
