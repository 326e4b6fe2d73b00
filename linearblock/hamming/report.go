package hamming

import (
	"encoding/json"

	"github.com/nathanhack/hamming74/linearblock/hamming/bitvec"
)

// reportView is the serialized form of both reports.
type reportView struct {
	Status      string `json:"status" yaml:"status"`
	Position    int    `json:"position,omitempty" yaml:"position,omitempty"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Syndrome    []int  `json:"syndrome" yaml:"syndrome"`
	Codeword    []int  `json:"codeword,omitempty" yaml:"codeword,omitempty"`
	Message     []int  `json:"message,omitempty" yaml:"message,omitempty"`
}

func (s SyndromeReport) view() reportView {
	return reportView{
		Status:      s.Status.Status.String(),
		Position:    s.Status.Position,
		Explanation: s.Status.Explain(),
		Syndrome:    bitvec.Ints(s.Syndrome),
	}
}

func (s SyndromeReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

func (s SyndromeReport) MarshalYAML() (interface{}, error) {
	return s.view(), nil
}

func (d DecodeReport) view() reportView {
	return reportView{
		Status:      d.Status.Status.String(),
		Position:    d.Status.Position,
		Explanation: d.Status.Explain(),
		Syndrome:    bitvec.Ints(d.Syndrome),
		Codeword:    bitvec.Ints(d.Codeword),
		Message:     bitvec.Ints(d.Message),
	}
}

func (d DecodeReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

func (d DecodeReport) MarshalYAML() (interface{}, error) {
	return d.view(), nil
}
