package linearblock

import (
	"fmt"
	"strings"

	"github.com/nathanhack/hamming13/bitfield"
	"github.com/nathanhack/hamming13/codeword"
	mat "github.com/nathanhack/sparsemat"
)

const (
	paritySymbols = 4
	messageLength = 8
)

//LinearBlock is the matrix view of the 13 bit codeword layout.
type LinearBlock struct {
	H mat.SparseMat // parity check matrix, column j is the binary representation of j
	G mat.SparseMat // generator matrix, row i encodes the character with only bit i set
}

//New creates the parity check and generator matrices for the codeword layout.
// Like any hamming code the columns of H are the bit versions of their own index,
// so the reserved bit 0 gets the zero column and is never checked.
func New() *LinearBlock {
	H := mat.CSRMat(paritySymbols, codeword.Length)
	for j := 0; j < codeword.Length; j++ {
		vec := mat.CSRVec(paritySymbols)
		for r := 0; r < paritySymbols; r++ {
			if j&(1<<r) > 0 {
				vec.Set(r, 1)
			}
		}
		H.SetColumn(j, vec)
	}

	// G is built from the encoder so it carries the exact same layout
	values := make([]int, 0, messageLength*codeword.Length)
	for i := 0; i < messageLength; i++ {
		values = append(values, bitValues(codeword.Encode(codeword.Character(1<<i)))...)
	}

	return &LinearBlock{
		H: H,
		G: mat.CSRMat(messageLength, codeword.Length, values...),
	}
}

func bitValues(c codeword.Codeword) []int {
	values := make([]int, codeword.Length)
	for i := range values {
		if bitfield.IsBitSet(c, i) {
			values[i] = 1
		}
	}
	return values
}

//ToVector converts the meaningful bits of c into a vector of length codeword.Length.
func ToVector(c codeword.Codeword) mat.SparseVector {
	return mat.CSRVec(codeword.Length, bitValues(c)...)
}

//FromVector converts a vector back into a Codeword. Only the first codeword.Length entries are used.
func FromVector(vec mat.SparseVector) codeword.Codeword {
	var c codeword.Codeword
	for _, i := range vec.NonzeroArray() {
		if i < codeword.Length {
			bitfield.SetBit(i, &c)
		}
	}
	return c
}

//Encode takes a character and encodes it with G returning the codeword
func (l *LinearBlock) Encode(ch codeword.Character) codeword.Codeword {
	message := mat.CSRVec(messageLength)
	for i := 0; i < messageLength; i++ {
		if bitfield.IsBitSet(ch, i) {
			message.Set(i, 1)
		}
	}

	cw := mat.CSRVec(l.CodewordLength())
	cw.MulMat(message, l.G)
	return FromVector(cw)
}

//Decode returns the character held in the data bits of vec, no correction is done.
func (l *LinearBlock) Decode(vec mat.SparseVector) codeword.Character {
	if vec.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), vec.Len()))
	}
	return codeword.ToCharacter(FromVector(vec))
}

//Syndrome computes H*c and returns it as a bit position.
func (l *LinearBlock) Syndrome(c codeword.Codeword) int {
	syndrome := mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, ToVector(c))

	position := 0
	for _, r := range syndrome.NonzeroArray() {
		position += 1 << r
	}
	return position
}

//ParityMasks derives the data bit mask of each parity check from the rows of H.
func (l *LinearBlock) ParityMasks() (masks [paritySymbols]codeword.Codeword) {
	for r := range masks {
		mask := FromVector(l.H.Row(r))
		bitfield.FlipBit(1<<r, &mask) // drop the parity bit itself
		masks[r] = mask
	}
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	rows, _ := l.G.Dims()
	checks, _ := l.H.Dims()

	cache := make([]mat.SparseVector, checks)
	for i := 0; i < checks; i++ {
		cache[i] = l.H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := l.G.Row(i)
		for j := 0; j < checks; j++ {
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}
	return true
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
