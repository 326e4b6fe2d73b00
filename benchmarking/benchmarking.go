package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

// Outcome is what a decoder reports about a received codeword.
type Outcome int

const (
	Clean         Outcome = iota // no error detected
	Corrected                    // an error was detected and a bit was corrected
	Uncorrectable                // an error was detected but no message was recovered
)

type Stats struct {
	Clean         avgstd.AvgStd // probability no error was detected
	Corrected     avgstd.AvgStd // probability a correction was applied
	Uncorrectable avgstd.AvgStd // probability the decoder refused to deliver a message
	Undetected    avgstd.AvgStd // probability a delivered message was wrong
	MessageError  avgstd.AvgStd // probability of a bit error in delivered messages
}

func (s Stats) String() string {
	return fmt.Sprintf("{Clean:%0.02f, Corrected:%0.02f, Uncorrectable:%0.02f, Undetected:%0.02f, Message:%0.02f(+/-%0.02f)}",
		s.Clean.Mean, s.Corrected.Mean, s.Uncorrectable.Mean, s.Undetected.Mean,
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
	)
}

// Trials returns the number of trials the stats cover.
func (s Stats) Trials() int {
	return s.Clean.Count
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (s *Stats) update(originalMessage mat.SparseVector, outcome Outcome, message mat.SparseVector) {
	s.Clean.Update(indicator(outcome == Clean))
	s.Corrected.Update(indicator(outcome == Corrected))
	s.Uncorrectable.Update(indicator(outcome == Uncorrectable))

	delivered := outcome != Uncorrectable && message != nil
	if !delivered {
		s.Undetected.Update(0)
		return
	}

	messageErrors := message.HammingDistance(originalMessage)
	s.Undetected.Update(indicator(messageErrors > 0))
	s.MessageError.Update(float64(messageErrors) / float64(originalMessage.Len()))
}

type Checkpoints func(updatedStats Stats)

type BinaryMessageConstructor func(trial int) (message mat.SparseVector)
type Encoder func(message mat.SparseVector) (codeword mat.SparseVector)
type Decoder func(receivedCodeword mat.SparseVector) (outcome Outcome, message mat.SparseVector)

//specfic to BSC
type BinarySymmetricChannel func(trial int, codeword mat.SparseVector) (channelInducedCodeword mat.SparseVector)

//specific to BPSK
type BPSKChannel func(trial int, codeword mat2.Vector) (channelInducedCodeword mat2.Vector)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode Encoder,
	channel BinarySymmetricChannel,
	decode Decoder,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode Encoder,
	channel BinarySymmetricChannel,
	decode Decoder,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {

	trial := func(i int) (mat.SparseVector, Outcome, mat.SparseVector) {
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(i, codeword)

		// repair the codeword (if possible) and recover the message
		outcome, decoded := decode(channelInducedCodeword)
		return message, outcome, decoded
	}

	return benchmark(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func BenchmarkBPSK(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode Encoder,
	channel BPSKChannel,
	decode Decoder,
	checkpoints Checkpoints, showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, decode, checkpoints, Stats{}, showProgress)
}

//BenchmarkBPSKContinueStats maps codewords to BPSK symbols before the channel and
// makes a hard decision (>=0 is a 1) before decoding.
func BenchmarkBPSKContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	encode Encoder,
	channel BPSKChannel,
	decode Decoder,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {

	trial := func(i int) (mat.SparseVector, Outcome, mat.SparseVector) {
		message := createMessage(i)
		codeword := encode(message)

		channelInducedCodeword := channel(i, BitsToBPSK(codeword))

		outcome, decoded := decode(BPSKToBits(channelInducedCodeword, 0))
		return message, outcome, decoded
	}

	return benchmark(ctx, trials, threads, trial, checkpoints, previousStats, showProgress)
}

func benchmark(ctx context.Context,
	trials, threads int,
	trial func(i int) (originalMessage mat.SparseVector, outcome Outcome, message mat.SparseVector),
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	for i := previousStats.Trials(); i < trials; i++ {
		index := i
		pool.Add(func() {
			if showProgress {
				bar.Increment()
			}
			original, outcome, message := trial(index)

			statsMux.Lock()
			previousStats.update(original, outcome, message)
			if checkpoints != nil {
				checkpoints(previousStats) //give them the updated checkpoint
			}
			statsMux.Unlock()
		})
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//BitsToBPSK converts a [0,1] vector to a [-1,1] vector
func BitsToBPSK(a mat.SparseVector) mat2.Vector {
	output := mat2.NewVecDense(a.Len(), nil)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] to sparse vector [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) mat.SparseVector {
	result := mat.CSRVec(a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result.Set(i, 1)
		}
	}
	return result
}
