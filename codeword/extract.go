package codeword

import "github.com/nathanhack/hamming13/bitfield"

// ToCharacter collects the data bits of c into a Character. c is not modified.
func ToCharacter(c Codeword) Character {
	var ch Character
	for charBit, b := range DataBits {
		if bitfield.IsBitSet(c, b) {
			bitfield.SetBit(charBit, &ch)
		}
	}
	return ch
}

// Encode places the bits of ch on the data bits and sets each parity bit to the
// parity of the data bits under its mask. The reserved bit is left clear.
func Encode(ch Character) Codeword {
	var c Codeword
	for charBit, b := range DataBits {
		if bitfield.IsBitSet(ch, charBit) {
			bitfield.SetBit(b, &c)
		}
	}
	for _, g := range ParityGroups {
		if bitfield.PopCount(c&g.Mask)%2 == 1 {
			bitfield.SetBit(g.Bit, &c)
		}
	}
	return c
}
