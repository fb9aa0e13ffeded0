package linkedmap

import (
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
)

func TestStringHash(t *testing.T) {
	assert.Equal(t, murmur3.Sum32([]byte("some-key")), StringHash("some-key"))
	assert.Equal(t, StringHash("some-key"), StringHash("some-key"))

	assert.Equal(t, true, StringEquals("abc", "abc"))
	assert.Equal(t, false, StringEquals("abc", "abd"))
}

func TestIntHash(t *testing.T) {
	assert.Equal(t, IntHash(123), IntHash(123))
	assert.Equal(t, spread(123), IntHash(123))

	assert.Equal(t, true, IntEquals(-7, -7))
	assert.Equal(t, false, IntEquals(-7, 7))
}

func TestInt64Hash(t *testing.T) {
	assert.Equal(t, Int64Hash(1<<40|3), Int64Hash(1<<40|3))

	// high bits participate in the hash
	a := Int64Hash(3)
	b := Int64Hash(1<<40 | 3)
	assert.Equal(t, false, a == b)

	assert.Equal(t, true, Int64Equals(1<<40, 1<<40))
	assert.Equal(t, false, Int64Equals(1<<40, 1<<41))
}

func TestPointerHash(t *testing.T) {
	x := 10
	y := 10

	assert.Equal(t, PointerHash(&x), PointerHash(&x))

	// identity, not content
	assert.Equal(t, true, PointerEquals(&x, &x))
	assert.Equal(t, false, PointerEquals(&x, &y))
}

func TestPointerKeyedTable(t *testing.T) {
	x := 10
	y := 10

	tbl, err := New(PointerHash[int], PointerEquals[int], Config[*int, string]{})
	assert.Equal(t, nil, err)

	assert.Equal(t, nil, tbl.Put(&x, "x"))

	v, ok := tbl.Get(&x)
	assert.Equal(t, true, ok)
	assert.Equal(t, "x", v)

	_, ok = tbl.Get(&y)
	assert.Equal(t, false, ok)
}

func TestInt64KeyedTable(t *testing.T) {
	tbl, err := New(Int64Hash, Int64Equals, Config[int64, string]{InitialCapacity: 4, AutoResize: true})
	assert.Equal(t, nil, err)

	for i := int64(0); i < 100; i++ {
		assert.Equal(t, nil, tbl.Put(i<<32|i, "value"))
	}
	assert.Equal(t, 100, tbl.Len())

	v, ok := tbl.Get(7<<32 | 7)
	assert.Equal(t, true, ok)
	assert.Equal(t, "value", v)
}
