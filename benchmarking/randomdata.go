package benchmarking

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	mat "github.com/nathanhack/sparsemat"
	mat2 "gonum.org/v1/gonum/mat"
)

// MaxFlips is the largest number of simultaneous bit errors a Hamming(7,4) code can detect.
const MaxFlips = 2

var (
	// ErrFlipCount is returned when more bits are requested to be flipped than MaxFlips.
	ErrFlipCount = errors.New("the hamming code only allows detecting at most two bit flips")
	// ErrFlipIndex is returned when the bit to flip is outside the codeword.
	ErrFlipIndex = errors.New("bit index out of range")
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int) mat.SparseVector {
	message := mat.CSRVec(len)
	for i := 0; i < len; i++ {
		message.Set(i, rand.Intn(2))
	}
	return message
}

// FlipRandom returns a copy of codeword with numberOfBitsToFlip distinct, uniformly chosen bits flipped.
func FlipRandom(codeword mat.SparseVector, numberOfBitsToFlip int) (mat.SparseVector, error) {
	if numberOfBitsToFlip > MaxFlips {
		return nil, fmt.Errorf("%w: requested %v", ErrFlipCount, numberOfBitsToFlip)
	}
	if numberOfBitsToFlip < 0 || numberOfBitsToFlip > codeword.Len() {
		return nil, fmt.Errorf("%w: requested %v of %v bits", ErrFlipCount, numberOfBitsToFlip, codeword.Len())
	}

	output := mat.CSRVecCopy(codeword)
	for _, i := range rand.Perm(codeword.Len())[:numberOfBitsToFlip] {
		output.Set(i, 1-output.At(i))
	}
	return output, nil
}

// FlipAt returns a copy of codeword with the bit at the 0-based index flipped.
func FlipAt(codeword mat.SparseVector, index int) (mat.SparseVector, error) {
	if index < 0 || index >= codeword.Len() {
		return nil, fmt.Errorf("%w: the codeword has only %v bits but found index %v", ErrFlipIndex, codeword.Len(), index)
	}

	output := mat.CSRVecCopy(codeword)
	output.Set(index, 1-output.At(index))
	return output, nil
}

// RandomFlipBits flips every bit of a copy of input independently with crossoverProbability.
func RandomFlipBits(input mat.SparseVector, crossoverProbability float64) mat.SparseVector {
	output := mat.CSRVecCopy(input)
	for i := 0; i < output.Len(); i++ {
		if rand.Float64() < crossoverProbability {
			output.Set(i, 1-output.At(i))
		}
	}
	return output
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
