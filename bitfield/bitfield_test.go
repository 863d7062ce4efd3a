package bitfield

import (
	"math/rand"
	"strconv"
	"testing"
)

func TestWidth(t *testing.T) {
	if w := Width[Narrow](); w != 8 {
		t.Fatalf("expected 8 but found %v", w)
	}
	if w := Width[Wide](); w != 16 {
		t.Fatalf("expected 16 but found %v", w)
	}
}

func TestSetBit(t *testing.T) {
	for v := 0; v < 1<<16; v += 7 {
		for i := 0; i < 16; i++ {
			c := Wide(v)
			SetBit(i, &c)
			if !IsBitSet(c, i) {
				t.Fatalf("expected bit %v set in %v", i, Format(c))
			}
			if c&^(Wide(1)<<i) != Wide(v)&^(Wide(1)<<i) {
				t.Fatalf("expected only bit %v to change from %v but found %v", i, Format(Wide(v)), Format(c))
			}
		}
	}
}

func TestFlipBitInvolution(t *testing.T) {
	for v := 0; v < 1<<16; v += 3 {
		for i := 0; i < 16; i++ {
			c := Wide(v)
			FlipBit(i, &c)
			if IsBitSet(c, i) == IsBitSet(Wide(v), i) {
				t.Fatalf("expected bit %v of %v to change", i, Format(Wide(v)))
			}
			FlipBit(i, &c)
			if c != Wide(v) {
				t.Fatalf("expected %v but found %v", Wide(v), c)
			}
		}
	}
}

func TestPopCount(t *testing.T) {
	for v := 0; v < 1<<16; v++ {
		c := Wide(v)
		sum := 0
		for i := 0; i < 16; i++ {
			if IsBitSet(c, i) {
				sum++
			}
		}
		if PopCount(c) != sum {
			t.Fatalf("expected %v but found %v", sum, PopCount(c))
		}
	}
}

func TestPopCountPermutation(t *testing.T) {
	for trial := 0; trial < 1000; trial++ {
		v := Wide(rand.Intn(1 << 16))
		perm := rand.Perm(16)
		var p Wide
		for i, j := range perm {
			if IsBitSet(v, i) {
				SetBit(j, &p)
			}
		}
		if PopCount(p) != PopCount(v) {
			t.Fatalf("expected %v but found %v", PopCount(v), PopCount(p))
		}
	}
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		value    Narrow
		index    int
		expected bool
	}{
		{0x00, 0, false},
		{0x01, 0, true},
		{0x80, 7, true},
		{0x7f, 7, false},
		{0x41, 6, true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := IsBitSet(test.value, test.index)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []func(){
		func() { IsBitSet(Narrow(0), 8) },
		func() { IsBitSet(Wide(0), 16) },
		func() { c := Narrow(0); SetBit(-1, &c) },
		func() { c := Wide(0); FlipBit(16, &c) },
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			test()
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		actual   string
		expected string
	}{
		{Format(Narrow(0x41)), "01000001"},
		{Format(Wide(0x0990)), "0000100110010000"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if test.actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, test.actual)
			}
		})
	}
}
