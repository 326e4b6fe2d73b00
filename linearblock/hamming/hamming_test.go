package hamming

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/linearblock"
	"github.com/nathanhack/hamming74/linearblock/hamming/bitvec"
	mat "github.com/nathanhack/sparsemat"
	"gopkg.in/yaml.v3"
)

func allMessages() []mat.SparseVector {
	messages := make([]mat.SparseVector, 0, 1<<MessageLength)
	for m := 0; m < 1<<MessageLength; m++ {
		message := mat.CSRVec(MessageLength)
		for i := 0; i < MessageLength; i++ {
			message.Set(i, (m>>i)&1)
		}
		messages = append(messages, message)
	}
	return messages
}

func TestNew(t *testing.T) {
	code, err := New(context.Background())
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	expected := [1 << ParitySymbols]ErrorStatus{
		{Status: NoError},
		{Status: Uncorrectable},
		{Status: Uncorrectable},
		{Status: Corrected, Position: 3},
		{Status: Uncorrectable},
		{Status: Corrected, Position: 5},
		{Status: Corrected, Position: 6},
		{Status: Corrected, Position: 7},
	}
	if code.table != expected {
		t.Fatalf("expected %v but found %v", expected, code.table)
	}

	if err := code.Block().Validate(context.Background()); err != nil {
		t.Fatalf("expected valid linearblock code but found: %v", err)
	}
}

func TestCode_RoundTrip(t *testing.T) {
	code := Default()
	for i, message := range allMessages() {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			codeword := code.Encode(message)

			check := code.CheckSyndrome(codeword)
			if !check.Syndrome.IsZero() {
				t.Fatalf("expected zero syndrome but found %v", bitvec.Format(check.Syndrome))
			}
			if check.Status.Status != NoError {
				t.Fatalf("expected %v but found %v", NoError, check.Status)
			}

			report := code.Decode(codeword)
			if report.Status.Status != NoError {
				t.Fatalf("expected %v but found %v", NoError, report.Status)
			}
			if !report.Message.Equals(message) {
				t.Fatalf("expected %v but found %v", bitvec.Format(message), bitvec.Format(report.Message))
			}
		})
	}
}

// Positions 1, 2 and 4 hold the parity bits. An error there produces a weight 1
// syndrome, which the decoder refuses to correct.
func TestCode_SingleErrorCorrection(t *testing.T) {
	code := Default()
	uncorrectable := map[int]bool{1: true, 2: true, 4: true}

	for i, message := range allMessages() {
		codeword := code.Encode(message)
		for p := 1; p <= CodewordLength; p++ {
			t.Run(strconv.Itoa(i)+"/"+strconv.Itoa(p), func(t *testing.T) {
				received, err := benchmarking.FlipAt(codeword, p-1)
				if err != nil {
					t.Fatalf("expected no error but found: %v", err)
				}

				report := code.Decode(received)
				if uncorrectable[p] {
					if report.Status.Status != Uncorrectable {
						t.Fatalf("expected %v but found %v", Uncorrectable, report.Status)
					}
					if report.Message != nil || report.Codeword != nil {
						t.Fatalf("expected no message or codeword but found %v %v", report.Message, report.Codeword)
					}
					return
				}

				expected := ErrorStatus{Status: Corrected, Position: p}
				if report.Status != expected {
					t.Fatalf("expected %v but found %v", expected, report.Status)
				}
				if !report.Codeword.Equals(codeword) {
					t.Fatalf("expected %v but found %v", bitvec.Format(codeword), bitvec.Format(report.Codeword))
				}
				if !report.Message.Equals(message) {
					t.Fatalf("expected %v but found %v", bitvec.Format(message), bitvec.Format(report.Message))
				}
			})
		}
	}
}

func TestCode_ConcreteScenario(t *testing.T) {
	code := Default()

	codeword, err := code.EncodeLiteral([]int{1, 0, 1, 0})
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	expected := mat.CSRVec(CodewordLength, 1, 0, 1, 1, 0, 1, 0)
	if !codeword.Equals(expected) {
		t.Fatalf("expected %v but found %v", bitvec.Format(expected), bitvec.Format(codeword))
	}

	received, err := benchmarking.FlipAt(codeword, 2)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	report := code.Decode(received)
	if report.Status != (ErrorStatus{Status: Corrected, Position: 3}) {
		t.Fatalf("expected Corrected(3) but found %v", report.Status)
	}
	if !report.Message.Equals(mat.CSRVec(MessageLength, 1, 0, 1, 0)) {
		t.Fatalf("expected [1 0 1 0] but found %v", bitvec.Format(report.Message))
	}
}

// Two bit errors at positions i and j produce the syndrome of position i^j. This is
// never zero and never i or j, so the decoder either refuses (weight 1) or "corrects"
// a third bit and lands on a different codeword. This is a property of the code and
// the weight rule, not of Decode.
func TestCode_DoubleFaultMiscorrection(t *testing.T) {
	code := Default()
	message := mat.CSRVec(MessageLength, 1, 0, 1, 0)
	codeword := code.Encode(message)

	//flipping positions 1 and 2 looks exactly like a single error at position 3
	received := mat.CSRVecCopy(codeword)
	received.Set(0, 1-received.At(0))
	received.Set(1, 1-received.At(1))

	report := code.Decode(received)
	if report.Status != (ErrorStatus{Status: Corrected, Position: 3}) {
		t.Fatalf("expected Corrected(3) but found %v", report.Status)
	}
	if report.Message.Equals(message) {
		t.Fatalf("expected the recovered message to differ from %v", bitvec.Format(message))
	}
	if !report.Message.Equals(mat.CSRVec(MessageLength, 0, 0, 1, 0)) {
		t.Fatalf("expected [0 0 1 0] but found %v", bitvec.Format(report.Message))
	}

	for i := 1; i <= CodewordLength; i++ {
		for j := i + 1; j <= CodewordLength; j++ {
			received := mat.CSRVecCopy(codeword)
			received.Set(i-1, 1-received.At(i-1))
			received.Set(j-1, 1-received.At(j-1))

			report := code.Decode(received)
			switch report.Status.Status {
			case NoError:
				t.Fatalf("flips at %v and %v: expected an error to be detected", i, j)
			case Corrected:
				if report.Status.Position != i^j {
					t.Fatalf("flips at %v and %v: expected Corrected(%v) but found %v", i, j, i^j, report.Status)
				}
				if report.Message.Equals(message) {
					t.Fatalf("flips at %v and %v: expected a wrong message", i, j)
				}
			case Uncorrectable:
				if weight(i^j) != 1 {
					t.Fatalf("flips at %v and %v: unexpected %v", i, j, report.Status)
				}
			}
		}
	}
}

func TestCode_DecodeDoesNotModifyInput(t *testing.T) {
	code := Default()
	received := mat.CSRVec(CodewordLength, 1, 0, 0, 1, 0, 1, 0)
	original := mat.CSRVecCopy(received)

	code.CheckSyndrome(received)
	report := code.Decode(received)

	if report.Status != (ErrorStatus{Status: Corrected, Position: 3}) {
		t.Fatalf("expected Corrected(3) but found %v", report.Status)
	}
	if !received.Equals(original) {
		t.Fatalf("expected %v but found %v", bitvec.Format(original), bitvec.Format(received))
	}
}

func TestCode_Correct(t *testing.T) {
	code := Default()
	tests := []struct {
		codeword mat.SparseVector
		expected mat.SparseVector
		status   ErrorStatus
	}{
		{mat.CSRVec(7, 1, 0, 1, 1, 0, 1, 0), mat.CSRVec(7, 1, 0, 1, 1, 0, 1, 0), ErrorStatus{Status: NoError}},
		{mat.CSRVec(7, 1, 0, 1, 1, 0, 1, 1), mat.CSRVec(7, 1, 0, 1, 1, 0, 1, 0), ErrorStatus{Status: Corrected, Position: 7}},
		{mat.CSRVec(7, 1, 0, 1, 0, 0, 1, 0), mat.CSRVec(7, 1, 0, 1, 0, 0, 1, 0), ErrorStatus{Status: Uncorrectable}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := code.Correct(test.codeword, code.Syndrome(test.codeword))
			if actual != test.status {
				t.Fatalf("expected %v but found %v", test.status, actual)
			}
			if !test.codeword.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", bitvec.Format(test.expected), bitvec.Format(test.codeword))
			}
		})
	}
}

func TestCode_Literals(t *testing.T) {
	code := Default()

	for i, input := range []interface{}{1010, "1010", " 1 0 1 0 ", []int{1, 0, 1, 0}, [4]uint8{1, 0, 1, 0}} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			codeword, err := code.EncodeLiteral(input)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !codeword.Equals(mat.CSRVec(CodewordLength, 1, 0, 1, 1, 0, 1, 0)) {
				t.Fatalf("expected [1 0 1 1 0 1 0] but found %v", bitvec.Format(codeword))
			}
		})
	}

	if _, err := code.EncodeLiteral("10101"); !errors.Is(err, bitvec.ErrValue) {
		t.Fatalf("expected %v but found %v", bitvec.ErrValue, err)
	}
	if _, err := code.DecodeLiteral(3.0); !errors.Is(err, bitvec.ErrType) {
		t.Fatalf("expected %v but found %v", bitvec.ErrType, err)
	}
	if _, err := code.CheckSyndromeLiteral("1011012"); !errors.Is(err, bitvec.ErrValue) {
		t.Fatalf("expected %v but found %v", bitvec.ErrValue, err)
	}

	report, err := code.DecodeLiteral("1001010")
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if report.Status != (ErrorStatus{Status: Corrected, Position: 3}) {
		t.Fatalf("expected Corrected(3) but found %v", report.Status)
	}

	check, err := code.CheckSyndromeLiteral(1011010)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if check.Status.Status != NoError {
		t.Fatalf("expected %v but found %v", NoError, check.Status)
	}
}

func TestNewFromBlock(t *testing.T) {
	//positions 1 and 3 of the default code swapped
	lb := &linearblock.LinearBlock{
		G: mat.CSRMat(7, 4,
			1, 0, 0, 0,
			1, 0, 1, 1,
			1, 1, 0, 1,
			0, 1, 1, 1,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1),
		H: mat.CSRMat(3, 7,
			1, 0, 1, 0, 1, 0, 1,
			1, 1, 0, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1),
		R: mat.CSRMat(4, 7,
			1, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 1, 0, 0,
			0, 0, 0, 0, 0, 1, 0,
			0, 0, 0, 0, 0, 0, 1),
	}

	code, err := NewFromBlock(context.Background(), lb)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	message := mat.CSRVec(MessageLength, 1, 0, 1, 0)
	codeword := code.Encode(message)

	tests := []struct {
		position int
		expected ErrorStatus
	}{
		{1, ErrorStatus{Status: Corrected, Position: 1}},
		{2, ErrorStatus{Status: Uncorrectable}},
		{3, ErrorStatus{Status: Uncorrectable}},
		{4, ErrorStatus{Status: Uncorrectable}},
		{5, ErrorStatus{Status: Corrected, Position: 5}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			received, err := benchmarking.FlipAt(codeword, test.position-1)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			report := code.Decode(received)
			if report.Status != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, report.Status)
			}
			if test.expected.Status == Corrected && !report.Message.Equals(message) {
				t.Fatalf("expected %v but found %v", bitvec.Format(message), bitvec.Format(report.Message))
			}
		})
	}
}

func TestNewFromBlock_Invalid(t *testing.T) {
	good := Default().Block()
	tests := []*linearblock.LinearBlock{
		nil,
		{G: good.G, H: good.H},
		{G: good.G, H: good.H, R: mat.CSRMat(4, 7,
			0, 0, 0, 0, 1, 0, 0,
			0, 0, 1, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 1, 0,
			0, 0, 0, 0, 0, 0, 1)},
		{G: good.G, H: mat.CSRMat(3, 7,
			1, 0, 1, 0, 1, 0, 0,
			0, 1, 1, 0, 0, 1, 0,
			0, 0, 0, 1, 1, 1, 0), R: good.R},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := NewFromBlock(context.Background(), test)
			if !errors.Is(err, ErrInvalidCode) {
				t.Fatalf("expected %v but found %v", ErrInvalidCode, err)
			}
		})
	}
}

func TestDecodeReport_MarshalYAML(t *testing.T) {
	report, err := Default().DecodeLiteral("1001010")
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	bs, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	var actual struct {
		Status   string `yaml:"status"`
		Position int    `yaml:"position"`
		Message  []int  `yaml:"message"`
	}
	if err := yaml.Unmarshal(bs, &actual); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if actual.Status != "Corrected" || actual.Position != 3 {
		t.Fatalf("expected Corrected at 3 but found %v at %v", actual.Status, actual.Position)
	}
	if len(actual.Message) != 4 || actual.Message[0] != 1 || actual.Message[1] != 0 || actual.Message[2] != 1 || actual.Message[3] != 0 {
		t.Fatalf("expected [1 0 1 0] but found %v", actual.Message)
	}
}
