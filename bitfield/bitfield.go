package bitfield

import (
	"fmt"
	"math/bits"
	"strings"
)

// Narrow is the 8 bit container.
type Narrow uint8

// Wide is the 16 bit container.
type Wide uint16

// Container is a fixed width unsigned integer addressed as an array of single bit
// flags, index 0 being the least significant bit.
type Container interface {
	~uint8 | ~uint16
}

// Width returns the number of addressable bits in T.
func Width[T Container]() int {
	var zero T
	return bits.Len64(uint64(^zero))
}

func checkIndex[T Container](index int) {
	if index < 0 || index >= Width[T]() {
		panic(fmt.Sprintf("bit index %v out of range [0,%v)", index, Width[T]()))
	}
}

// IsBitSet returns true if bit index of c is 1.
func IsBitSet[T Container](c T, index int) bool {
	checkIndex[T](index)
	return c&(T(1)<<index) != 0
}

// SetBit sets bit index of c to 1.
func SetBit[T Container](index int, c *T) {
	checkIndex[T](index)
	*c |= T(1) << index
}

// FlipBit toggles bit index of c.
func FlipBit[T Container](index int, c *T) {
	checkIndex[T](index)
	*c ^= T(1) << index
}

// PopCount returns the number of bits set to 1 across the full width of c.
func PopCount[T Container](c T) int {
	return bits.OnesCount64(uint64(c))
}

// Format renders c most significant bit first, one character per bit.
func Format[T Container](c T) string {
	w := Width[T]()
	buf := strings.Builder{}
	buf.Grow(w)
	for i := w - 1; i >= 0; i-- {
		if IsBitSet(c, i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}
