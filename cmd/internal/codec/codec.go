package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/nathanhack/hamming74/linearblock/hamming/bitvec"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	ECCFile string
	Format  string
	Count   int
	Index   int
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.LoadCode(context.Background(), ECCFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	codeword, err := code.EncodeLiteral(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	err = Write(os.Stdout, Format, struct {
		Codeword []int `json:"codeword" yaml:"codeword"`
	}{bitvec.Ints(codeword)})
	if err != nil {
		fmt.Println(err)
	}
}

var SyndromeRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.LoadCode(context.Background(), ECCFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := code.CheckSyndromeLiteral(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	err = Write(os.Stdout, Format, report)
	if err != nil {
		fmt.Println(err)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.LoadCode(context.Background(), ECCFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := code.DecodeLiteral(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	err = Write(os.Stdout, Format, report)
	if err != nil {
		fmt.Println(err)
	}
}

var FlipRun = func(cmd *cobra.Command, args []string) {
	codeword, err := bitvec.Parse(args[0], hamming.CodewordLength)
	if err != nil {
		fmt.Println(err)
		return
	}

	codeword, err = flip(codeword, cmd.Flags().Changed("index"), cmd.Flags().Changed("count"))
	if err != nil {
		fmt.Println(err)
		return
	}

	err = Write(os.Stdout, Format, struct {
		Codeword []int `json:"codeword" yaml:"codeword"`
	}{bitvec.Ints(codeword)})
	if err != nil {
		fmt.Println(err)
	}
}

// flip applies --index when it was given, otherwise --count. Both together are refused.
func flip(codeword mat.SparseVector, indexSet, countSet bool) (mat.SparseVector, error) {
	if indexSet && countSet {
		return nil, fmt.Errorf("--index and --count can not be used together")
	}
	if indexSet {
		return benchmarking.FlipAt(codeword, Index)
	}
	return benchmarking.FlipRandom(codeword, Count)
}

// Write renders v to w as json or yaml.
func Write(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q, expected json or yaml", format)
}
