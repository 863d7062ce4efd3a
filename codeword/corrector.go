package codeword

import "github.com/nathanhack/hamming13/bitfield"

// Syndrome returns the sum of the weights of the failing parity checks.
// A zero syndrome means every check passed, otherwise it is the index of the
// bit to flip assuming a single bit error.
func Syndrome(c Codeword) int {
	syndrome := 0
	for _, g := range ParityGroups {
		observed := bitfield.IsBitSet(c, g.Bit)
		expected := bitfield.PopCount(c&g.Mask)%2 == 1
		if observed != expected {
			syndrome += g.Bit
		}
	}
	return syndrome
}

// Correct repairs a single bit error in c in place and returns the syndrome.
// When the syndrome is zero c is left untouched. The syndrome never exceeds 15
// so the flip always lands inside the container.
func Correct(c *Codeword) int {
	syndrome := Syndrome(*c)
	if syndrome != 0 {
		bitfield.FlipBit(syndrome, c)
	}
	return syndrome
}

// Valid returns true if all four parity checks pass.
func Valid(c Codeword) bool {
	return Syndrome(c) == 0
}
