package linkedmap

// listRoot holds the two ends of the order list. The per-entry links live
// on the entries themselves; nilIndex terminates both ends.
type listRoot struct {
	head int32 // oldest
	tail int32 // newest
}

func emptyListRoot() listRoot {
	return listRoot{head: nilIndex, tail: nilIndex}
}

func (t *Table[K, V]) orderPushTail(index int32) {
	e := t.arena.at(index)
	e.order.prev = t.order.tail
	e.order.next = nilIndex

	if t.order.tail != nilIndex {
		t.arena.at(t.order.tail).order.next = index
	} else {
		t.order.head = index
	}
	t.order.tail = index
}

func (t *Table[K, V]) orderUnlink(index int32) {
	e := t.arena.at(index)

	if e.order.prev != nilIndex {
		t.arena.at(e.order.prev).order.next = e.order.next
	} else {
		t.order.head = e.order.next
	}

	if e.order.next != nilIndex {
		t.arena.at(e.order.next).order.prev = e.order.prev
	} else {
		t.order.tail = e.order.prev
	}

	e.order = links{next: nilIndex, prev: nilIndex}
}

func (t *Table[K, V]) orderMoveToTail(index int32) {
	if t.order.tail == index {
		return
	}
	t.orderUnlink(index)
	t.orderPushTail(index)
}

// Oldest returns the entry at the least-recent end of the order list, the
// candidate an evictor inspects
func (t *Table[K, V]) Oldest() (key K, value V, ok bool) {
	if t.order.head == nilIndex {
		return key, value, false
	}
	e := t.arena.at(t.order.head)
	return e.key, e.value, true
}

// Newest returns the entry at the most-recent end of the order list
func (t *Table[K, V]) Newest() (key K, value V, ok bool) {
	if t.order.tail == nilIndex {
		return key, value, false
	}
	e := t.arena.at(t.order.tail)
	return e.key, e.value, true
}
