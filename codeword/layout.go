package codeword

import "fmt"

// Length is the number of meaningful bits in a Codeword (bit 0 included).
const Length = 13

const (
	P1Mask Codeword = 0x0AA8 // data bits 3,5,7,9,11
	P2Mask Codeword = 0x0CC8 // data bits 3,6,7,10,11
	P4Mask Codeword = 0x10E0 // data bits 5,6,7,12
	P8Mask Codeword = 0x1E00 // data bits 9,10,11,12
)

// ParityGroup ties a parity bit to the data bits whose parity it carries.
// Bit is both the index of the parity bit and its weight in the syndrome.
type ParityGroup struct {
	Bit  int
	Mask Codeword
}

// ParityGroups are the four parity checks in syndrome weight order.
var ParityGroups = [4]ParityGroup{
	{1, P1Mask},
	{2, P2Mask},
	{4, P4Mask},
	{8, P8Mask},
}

// DataBits maps character bit i to the codeword bit DataBits[i].
var DataBits = [8]int{3, 5, 6, 7, 9, 10, 11, 12}

// DataBitToCharBit returns the character bit carried by codeword bit index.
// It panics if index is not one of the eight data bits.
func DataBitToCharBit(index int) int {
	for charBit, b := range DataBits {
		if b == index {
			return charBit
		}
	}
	panic(fmt.Sprintf("codeword bit %v is not a data bit", index))
}

// IsParityBit reports whether index is one of the parity bits 1, 2, 4 or 8.
func IsParityBit(index int) bool {
	for _, g := range ParityGroups {
		if g.Bit == index {
			return true
		}
	}
	return false
}

// IsDataBit reports whether index carries a character bit.
func IsDataBit(index int) bool {
	for _, b := range DataBits {
		if b == index {
			return true
		}
	}
	return false
}
