package internal

import (
	"context"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

//CalculateRank returns the GF(2) rank of m, or -1 if m is nil or ctx was cancelled.
// m is not modified.
func CalculateRank(ctx context.Context, m mat.SparseMat, threads int, showProgressBar bool) int {
	if m == nil {
		return -1
	}
	return rowEchelon(ctx, mat.CSRMatCopy(m), threads, showProgressBar)
}

// rowEchelon brings m into row echelon form using only row operations and
// returns the number of pivots found.
func rowEchelon(ctx context.Context, m mat.SparseMat, threads int, showProgressBar bool) int {
	rows, cols := m.Dims()
	bar := pb.Full.New(cols)
	bar.Set("prefix", "Processing Column ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}
	logrus.Debugf("Row echelon")

	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}
		bar.Increment()

		pivot := pivotRow(m, c, rank)
		if pivot == -1 {
			continue
		}

		m.SwapRows(rank, pivot)
		eliminateBelow(ctx, rank, c, m, threads)
		rank++
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()
	logrus.Debugf("Row echelon complete: rank %v", rank)
	return rank
}

// pivotRow returns the first row at or below fromRow with a 1 in column c, or -1.
func pivotRow(m mat.SparseMat, c, fromRow int) int {
	for _, r := range m.Column(c).NonzeroArray() {
		if r >= fromRow {
			return r
		}
	}
	return -1
}

// eliminateBelow clears column c in every row below r using row r.
func eliminateBelow(ctx context.Context, r, c int, m mat.SparseMat, threads int) {
	pivots := m.Column(c).NonzeroArray()
	pool := threadpool.New(ctx, threads)
	pivotRow := m.Row(r)
	mux := sync.RWMutex{}

	//in GF2 subtract is add
	for _, index := range pivots {
		p := index
		if p <= r {
			continue
		}
		pool.Add(func() {
			mux.RLock()
			row := m.Row(p)
			mux.RUnlock()
			row.Add(row, pivotRow)
			mux.Lock()
			m.SetRow(p, row)
			mux.Unlock()
		})
	}
	pool.Wait()
}
