package internal

import (
	mat "github.com/nathanhack/sparsemat"
)

//ValidateHGMatrices tests if H*G == 0, i.e. every column of G lies in the kernel of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	hRows, _ := H.Dims()
	_, gCols := G.Dims()

	syndrome := mat.CSRVec(hRows)
	for j := 0; j < gCols; j++ {
		syndrome.MatMul(H, G.Column(j))
		if !syndrome.IsZero() {
			return false
		}
	}
	return true
}

//ValidateRGMatrices tests if R*G == I, i.e. R recovers every message G encodes
func ValidateRGMatrices(G, R mat.SparseMat) bool {
	rRows, _ := R.Dims()
	_, gCols := G.Dims()
	if rRows != gCols {
		return false
	}

	ident := mat.CSRIdentity(gCols)
	selected := mat.CSRVec(rRows)
	for j := 0; j < gCols; j++ {
		selected.MatMul(R, G.Column(j))
		if !selected.Equals(ident.Column(j)) {
			return false
		}
	}
	return true
}

//ColumnValues returns the integer value of every column of m, row 0 being the least significant bit.
func ColumnValues(m mat.SparseMat) []int {
	_, cols := m.Dims()
	values := make([]int, cols)
	for c := 0; c < cols; c++ {
		values[c] = VectorValue(m.Column(c))
	}
	return values
}

//VectorValue returns the integer value of v with index 0 as the least significant bit.
func VectorValue(v mat.SparseVector) int {
	value := 0
	for _, i := range v.NonzeroArray() {
		value |= 1 << i
	}
	return value
}
