// Package codeword decodes characters carried by 13 bit Hamming single error
// correcting codewords.
//
// A codeword lives in a 16 bit container. Bit 0 is reserved, bits 1, 2, 4 and 8
// are parity bits and bits 3, 5, 6, 7, 9, 10, 11 and 12 carry the character.
// Only single bit errors are corrected. When two or more bits are corrupted the
// syndrome points at the wrong position (or at bit 0, leaving the word alone) and
// the decoded character is silently wrong; no double error detection is done.
package codeword

import (
	"fmt"

	"github.com/nathanhack/hamming13/bitfield"
)

// Codeword is one transmitted unit, only bits 0 through 12 are meaningful.
type Codeword bitfield.Wide

// Character is the decoded 8 bit payload.
type Character bitfield.Narrow

func (c Codeword) String() string {
	return fmt.Sprintf("0x%04X", uint16(c))
}

// Bits renders the meaningful bits of c, bit 12 first.
func (c Codeword) Bits() string {
	return bitfield.Format(c)[bitfield.Width[Codeword]()-Length:]
}

func (c Character) String() string {
	return string([]byte{byte(c)})
}

// Bits renders c most significant bit first.
func (c Character) Bits() string {
	return bitfield.Format(c)
}
