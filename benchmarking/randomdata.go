package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/hamming13/bitfield"
	"github.com/nathanhack/hamming13/codeword"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomCharacter picks a character uniformly.
func RandomCharacter() codeword.Character {
	return codeword.Character(rand.Intn(256))
}

// RandomFlipBitCount flips min(numberOfBitsToFlip,12) distinct transmitted bits of c.
func RandomFlipBitCount(c codeword.Codeword, numberOfBitsToFlip int) codeword.Codeword {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < transmittedBits {
		flip[rand.Intn(transmittedBits)+1] = true
	}

	for i := range flip {
		bitfield.FlipBit(i, &c)
	}
	return c
}

// RandomFlipProbability flips each transmitted bit of c with probability crossoverProbability.
func RandomFlipProbability(c codeword.Codeword, crossoverProbability float64) codeword.Codeword {
	for i := 1; i <= transmittedBits; i++ {
		if rand.Float64() < crossoverProbability {
			bitfield.FlipBit(i, &c)
		}
	}
	return c
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
