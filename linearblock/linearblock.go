package linearblock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nathanhack/hamming74/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

//LinearBlock contains the three matrices of a non-systematic linear block code over GF(2).
// Codewords are column vectors: codeword = G*message, syndrome = H*codeword and
// message = R*codeword.
type LinearBlock struct {
	G mat.SparseMat // generator matrix, n x k
	H mat.SparseMat // parity check matrix, (n-k) x n
	R mat.SparseMat // decoder selection matrix, k x n
}

//// For JSON unmarshalling
type linearblock struct {
	G mat.CSRMatrix
	H mat.CSRMatrix
	R mat.CSRMatrix
}

//UnmarshalJSON is needed because LinearBlock has mat.SparseMat fields and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.G = &lb.G
	l.H = &lb.H
	l.R = &lb.R
	return nil
}

//Encode takes in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	if message.Len() != l.MessageLength() {
		panic(fmt.Sprintf("message length == %v is required but found %v", l.MessageLength(), message.Len()))
	}

	codeword = mat.CSRVec(l.CodewordLength())
	codeword.MatMul(l.G, message)
	return codeword
}

//Decode takes in a codeword and returns the message contained in it. No correction is attempted.
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	message = mat.CSRVec(l.MessageLength())
	message.MatMul(l.R, codeword)
	return message
}

func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	_, k := l.G.Dims()
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

//Validate checks the shapes of the three matrices, that H*G=0, that R*G=I and that the
// columns of G are linearly independent.
func (l *LinearBlock) Validate(ctx context.Context) error {
	if l.G == nil || l.H == nil || l.R == nil {
		return fmt.Errorf("G, H and R must all be set")
	}
	gRows, gCols := l.G.Dims()
	hRows, hCols := l.H.Dims()
	rRows, rCols := l.R.Dims()

	if hRows >= hCols {
		return fmt.Errorf("H matrix shape == (rows, cols) where rows < cols required but found (%v, %v)", hRows, hCols)
	}
	if gRows != hCols || gCols != hCols-hRows {
		return fmt.Errorf("G matrix shape == (%v, %v) required but found (%v, %v)", hCols, hCols-hRows, gRows, gCols)
	}
	if rRows != gCols || rCols != gRows {
		return fmt.Errorf("R matrix shape == (%v, %v) required but found (%v, %v)", gCols, gRows, rRows, rCols)
	}
	if !internal.ValidateHGMatrices(l.G, l.H) {
		return fmt.Errorf("H*G != 0")
	}
	if !internal.ValidateRGMatrices(l.G, l.R) {
		return fmt.Errorf("R*G != I")
	}
	if rank := internal.CalculateRank(ctx, l.G.T(), 0, false); rank != gCols {
		return fmt.Errorf("G columns must be linearly independent: rank == %v but found %v", gCols, rank)
	}
	return nil
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nR:\n")
	buf.WriteString(l.R.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
