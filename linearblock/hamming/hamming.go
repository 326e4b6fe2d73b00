package hamming

import (
	"context"
	"errors"
	"fmt"

	"github.com/nathanhack/hamming74/linearblock"
	"github.com/nathanhack/hamming74/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

const (
	MessageLength  = 4
	CodewordLength = 7
	ParitySymbols  = CodewordLength - MessageLength
)

// ErrInvalidCode is returned when a set of matrices can not be used as a Hamming(7,4) code.
var ErrInvalidCode = errors.New("invalid hamming(7,4) code")

// Code is a Hamming(7,4) codec. It can correct single bit errors in the data
// positions but, unlike a plain syndrome decoder, refuses to correct any syndrome
// of weight 1. Such a syndrome is reported as Uncorrectable since it may be caused
// by an error in a parity bit or by two errors in data bits.
//
// A Code is never modified after construction and is safe for concurrent use.
type Code struct {
	block *linearblock.LinearBlock
	// table maps the integer value of a syndrome (row 0 is the least significant bit)
	// to the status it produces.
	table [1 << ParitySymbols]ErrorStatus
}

var defaultCode = mustNew()

func mustNew() *Code {
	c, err := New(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the process wide Hamming(7,4) codec.
func Default() *Code {
	return defaultCode
}

// New creates the Hamming(7,4) codec whose parity check matrix columns are the
// binary expansions of 1 through 7, so a single bit error at position p produces
// a syndrome with integer value p.
func New(ctx context.Context) (*Code, error) {
	return NewFromBlock(ctx, &linearblock.LinearBlock{
		G: generator(),
		H: parityCheck(ParitySymbols),
		R: selection(),
	})
}

// NewFromBlock creates a codec from any valid (7,4) matrix set. The columns of H must
// be the seven nonzero vectors of GF(2)^3 in any order. The matrices are copied.
func NewFromBlock(ctx context.Context, lb *linearblock.LinearBlock) (*Code, error) {
	if lb == nil {
		return nil, fmt.Errorf("%w: linearblock required", ErrInvalidCode)
	}
	if err := lb.Validate(ctx); err != nil {
		logrus.Errorf("Unable to use linearblock as a hamming code: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if lb.MessageLength() != MessageLength || lb.CodewordLength() != CodewordLength {
		return nil, fmt.Errorf("%w: (%v,%v) code found", ErrInvalidCode, lb.CodewordLength(), lb.MessageLength())
	}

	c := &Code{
		block: copyBlock(lb),
	}

	seen := make(map[int]bool)
	for col, value := range internal.ColumnValues(c.block.H) {
		if value == 0 || seen[value] {
			return nil, fmt.Errorf("%w: H columns must be distinct and nonzero", ErrInvalidCode)
		}
		seen[value] = true

		if weight(value) == 1 {
			c.table[value] = ErrorStatus{Status: Uncorrectable}
			continue
		}
		c.table[value] = ErrorStatus{Status: Corrected, Position: col + 1}
	}
	c.table[0] = ErrorStatus{Status: NoError}

	logrus.Debugf("Syndrome table: %v", c.table)
	return c, nil
}

// Block returns a copy of the matrices used by c.
func (c *Code) Block() *linearblock.LinearBlock {
	return copyBlock(c.block)
}

func (c *Code) String() string {
	return c.block.String()
}

func copyBlock(lb *linearblock.LinearBlock) *linearblock.LinearBlock {
	return &linearblock.LinearBlock{
		G: mat.CSRMatCopy(lb.G),
		H: mat.CSRMatCopy(lb.H),
		R: mat.CSRMatCopy(lb.R),
	}
}

func weight(value int) int {
	w := 0
	for ; value > 0; value >>= 1 {
		w += value & 1
	}
	return w
}

func generator() mat.SparseMat {
	return mat.CSRMat(CodewordLength, MessageLength,
		1, 1, 0, 1,
		1, 0, 1, 1,
		1, 0, 0, 0,
		0, 1, 1, 1,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// parityCheck makes the columns the bit versions of every number from 1 to
// and including n -> [1,n] (note they're nonzero)
func parityCheck(paritySymbols int) mat.SparseMat {
	n := 1<<paritySymbols - 1
	H := mat.CSRMat(paritySymbols, n)

	for i := 1; i <= n; i++ {
		vec := mat.CSRVec(paritySymbols)
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<j) > 0 {
				vec.Set(j, 1)
			}
		}
		H.SetColumn(i-1, vec)
	}
	return H
}

// selection picks the data positions 3, 5, 6 and 7 out of a codeword.
func selection() mat.SparseMat {
	return mat.CSRMat(MessageLength, CodewordLength,
		0, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 0, 1,
	)
}
