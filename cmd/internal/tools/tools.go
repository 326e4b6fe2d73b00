package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/internal/metrics"
	"github.com/nathanhack/hamming74/linearblock"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

func LoadLinearBlockECC(filepath string) (*linearblock.LinearBlock, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON_FILE must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var ecc linearblock.LinearBlock
	err = json.Unmarshal(bs, &ecc)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	return &ecc, nil
}

// LoadCode returns the default codec when filepath is empty, otherwise the codec stored in filepath.
func LoadCode(ctx context.Context, filepath string) (*hamming.Code, error) {
	if filepath == "" {
		return hamming.Default(), nil
	}

	ecc, err := LoadLinearBlockECC(filepath)
	if err != nil {
		return nil, err
	}
	return hamming.NewFromBlock(ctx, ecc)
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}

// Decoder adapts code to the benchmarking harness, counting outcomes in m when m is not nil.
func Decoder(code *hamming.Code, m *metrics.Decodes) benchmarking.Decoder {
	return func(receivedCodeword mat.SparseVector) (benchmarking.Outcome, mat.SparseVector) {
		report := code.Decode(receivedCodeword)
		if m != nil {
			m.Observe(report.Status)
		}

		switch report.Status.Status {
		case hamming.Corrected:
			return benchmarking.Corrected, report.Message
		case hamming.Uncorrectable:
			return benchmarking.Uncorrectable, nil
		}
		return benchmarking.Clean, report.Message
	}
}
