package harddecision

import (
	"github.com/nathanhack/hamming13/bitfield"
	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/hamming13/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

type BitFlippingAlg interface {
	Flip(currentSyndromes mat.SparseVector) (index int, done bool)
	Reset() //resets internal state for next codeword
}

//BitFlipping repeatedly flips the bit chosen by bitFlippingAlg until the syndrome
// of c is zero or maxIter is reached. c is modified in place and the number of
// flips is returned.
func BitFlipping(bitFlippingAlg BitFlippingAlg, H mat.SparseMat, c *codeword.Codeword, maxIter int) (flips int) {
	bitFlippingAlg.Reset()
	rows, _ := H.Dims()
	syndrome := mat.CSRVec(rows)
	for i := 0; i < maxIter; i++ {
		syndrome.MatMul(H, linearblock.ToVector(*c))
		index, done := bitFlippingAlg.Flip(syndrome)
		if done {
			break
		}
		bitfield.FlipBit(index, c)
		flips++
	}
	return flips
}
