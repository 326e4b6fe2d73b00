package hamming

import (
	"fmt"

	"github.com/nathanhack/hamming74/linearblock/hamming/bitvec"
	"github.com/nathanhack/hamming74/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//Encode takes in a 4 bit message and returns the 7 bit codeword G*message
func (c *Code) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	codeword = c.block.Encode(message)
	logrus.Debugf("The 7-bit codeword is %v", bitvec.Format(codeword))
	return codeword
}

//Syndrome returns H*codeword. It is zero iff codeword is a valid codeword.
func (c *Code) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	return c.block.Syndrome(codeword)
}

//Locate determines the error status for a syndrome without touching any codeword.
func (c *Code) Locate(syndrome mat.SparseVector) ErrorStatus {
	if syndrome.Len() != ParitySymbols {
		panic(fmt.Sprintf("syndrome length == %v required but found %v", ParitySymbols, syndrome.Len()))
	}
	return c.table[internal.VectorValue(syndrome)]
}

//Correct locates the error described by syndrome and, only when the status is
// Corrected, flips that bit of codeword in place.
func (c *Code) Correct(codeword, syndrome mat.SparseVector) ErrorStatus {
	status := c.Locate(syndrome)
	if status.Status == Corrected {
		i := status.Position - 1
		codeword.Set(i, 1-codeword.At(i))
	}
	return status
}

// SyndromeReport is the read only diagnostic of a received codeword.
type SyndromeReport struct {
	Syndrome mat.SparseVector
	Status   ErrorStatus
}

//CheckSyndrome computes the syndrome of codeword and the status it would lead to.
// codeword is not modified.
func (c *Code) CheckSyndrome(codeword mat.SparseVector) SyndromeReport {
	syndrome := c.Syndrome(codeword)
	return SyndromeReport{
		Syndrome: syndrome,
		Status:   c.Locate(syndrome),
	}
}

// DecodeReport is the result of decoding a received codeword. Codeword and Message
// are nil when the status is Uncorrectable.
type DecodeReport struct {
	Status   ErrorStatus
	Syndrome mat.SparseVector
	Codeword mat.SparseVector // the corrected codeword
	Message  mat.SparseVector // the recovered message
}

//Decode corrects a copy of codeword when possible and returns the message it carries.
// codeword is not modified.
func (c *Code) Decode(codeword mat.SparseVector) DecodeReport {
	corrected := mat.CSRVecCopy(codeword)
	syndrome := c.Syndrome(corrected)
	status := c.Correct(corrected, syndrome)

	report := DecodeReport{
		Status:   status,
		Syndrome: syndrome,
	}
	if status.Status == Uncorrectable {
		logrus.Debugf("Syndrome %v is uncorrectable", bitvec.Format(syndrome))
		return report
	}

	report.Codeword = corrected
	report.Message = c.block.Decode(corrected)
	logrus.Debugf("Decoded %v: %v -> %v", status, bitvec.Format(corrected), bitvec.Format(report.Message))
	return report
}

//EncodeLiteral validates a message given in any form bitvec.Parse accepts and encodes it.
func (c *Code) EncodeLiteral(message interface{}) (mat.SparseVector, error) {
	m, err := bitvec.Parse(message, MessageLength)
	if err != nil {
		return nil, err
	}
	return c.Encode(m), nil
}

//CheckSyndromeLiteral validates a codeword given in any form bitvec.Parse accepts and checks its syndrome.
func (c *Code) CheckSyndromeLiteral(codeword interface{}) (SyndromeReport, error) {
	cw, err := bitvec.Parse(codeword, CodewordLength)
	if err != nil {
		return SyndromeReport{}, err
	}
	return c.CheckSyndrome(cw), nil
}

//DecodeLiteral validates a codeword given in any form bitvec.Parse accepts and decodes it.
func (c *Code) DecodeLiteral(codeword interface{}) (DecodeReport, error) {
	cw, err := bitvec.Parse(codeword, CodewordLength)
	if err != nil {
		return DecodeReport{}, err
	}
	return c.Decode(cw), nil
}
