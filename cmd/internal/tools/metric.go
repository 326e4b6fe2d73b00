package tools

import (
	"fmt"

	"github.com/nathanhack/hamming74/benchmarking"
	"golang.org/x/exp/slices"
)

var metricNames = []string{"message", "clean", "corrected", "uncorrectable", "undetected"}

// Metric selects one of the mean rates of stats by name.
func Metric(stats benchmarking.Stats, name string) (float64, error) {
	switch name {
	case "message":
		return stats.MessageError.Mean, nil
	case "clean":
		return stats.Clean.Mean, nil
	case "corrected":
		return stats.Corrected.Mean, nil
	case "uncorrectable":
		return stats.Uncorrectable.Mean, nil
	case "undetected":
		return stats.Undetected.Mean, nil
	}
	return 0, fmt.Errorf("unknown metric %q, expected one of %v", name, metricNames)
}

// LoadAllResults loads every results file and returns them with the sorted union of their parameters.
func LoadAllResults(filepaths []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(filepaths))
	parameters := make([]float64, 0)
	for i, resultFile := range filepaths {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
		for p := range s.Stats {
			if !slices.Contains(parameters, p) {
				parameters = append(parameters, p)
			}
		}
	}
	slices.Sort(parameters)
	return stats, parameters, nil
}
