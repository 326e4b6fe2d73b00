package hamming

import "fmt"

type Status int

const (
	NoError Status = iota
	Corrected
	Uncorrectable
)

func (s Status) String() string {
	switch s {
	case NoError:
		return "NoError"
	case Corrected:
		return "Corrected"
	case Uncorrectable:
		return "Uncorrectable"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ErrorStatus is the outcome of inspecting a syndrome.
type ErrorStatus struct {
	Status   Status
	Position int // 1-based bit position, only set when Status == Corrected
}

func (e ErrorStatus) String() string {
	if e.Status == Corrected {
		return fmt.Sprintf("Corrected(%d)", e.Position)
	}
	return e.Status.String()
}

// Explain returns a sentence describing e for people.
func (e ErrorStatus) Explain() string {
	switch e.Status {
	case NoError:
		return "There was no error in the codeword."
	case Uncorrectable:
		return "The syndrome has weight 1: either a parity bit was flipped or two data bits were flipped. The error cannot be corrected."
	case Corrected:
		return fmt.Sprintf("The bit at position %d was flipped and has been corrected.", e.Position)
	}
	return e.String()
}
