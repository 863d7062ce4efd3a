package harddecision

import (
	mat "github.com/nathanhack/sparsemat"
)

func argMaxInt(values []int) int {
	result := 0
	max := values[0]
	for i := 1; i < len(values); i++ {
		v := values[i]
		if max < v {
			result = i
			max = v
		}
	}
	return result
}

//Gallager picks the bit taking part in the most unsatisfied checks.
type Gallager struct {
	e_n         []int
	columnCache [][]int
}

func NewGallager(H mat.SparseMat) *Gallager {
	_, cols := H.Dims()
	g := &Gallager{
		e_n:         make([]int, cols),
		columnCache: make([][]int, cols),
	}
	for n := 0; n < cols; n++ {
		g.columnCache[n] = H.Column(n).NonzeroArray()
	}
	return g
}

func (g *Gallager) Reset() {
	//nothing to do here
}

func (g *Gallager) Flip(currentSyndromes mat.SparseVector) (index int, done bool) {
	if currentSyndromes.IsZero() {
		return -1, true
	}

	g.nextE_n(currentSyndromes)
	return argMaxInt(g.e_n), false
}

func (g *Gallager) nextE_n(syndromes mat.SparseVector) {
	// E_n = -sum((1-2*s_m), m ∈ M(n))
	// the reserved column is empty so its E_n stays 0

	synIndices := syndromes.NonzeroArray()
	synIndicesLen := len(synIndices)
	for n := 0; n < len(g.e_n); n++ {
		sum := 0
		indices := g.columnCache[n]
		indicesLen := len(indices)
		for i, j := 0, 0; i < indicesLen && j < synIndicesLen; {
			if indices[i] == synIndices[j] {
				sum++
				i++
				j++
			} else if indices[i] < synIndices[j] {
				i++
			} else {
				j++
			}
		}

		g.e_n[n] = -indicesLen + 2*sum
	}
}
