// Package scores implements codon usage bias models. Every model is
// fitted at construction time and immutable afterwards; scoring calls
// are read-only and safe to run concurrently on one instance.
package scores

import (
	"github.com/op/go-logging"
)

// log is the global logging variable.
var log = logging.MustGetLogger("scores")

// ScalarScorer is implemented by models producing a single value per
// sequence.
type ScalarScorer interface {
	Score(seq string) (float64, error)
}

// VectorScorer is implemented by models producing a per-codon-position
// value vector per sequence. Positions whose codon is outside the
// fitted domain hold NaN.
type VectorScorer interface {
	Vector(seq string) ([]float64, error)
}

// Slice restricts a sequence to the [Start, End) sub-range before
// scoring. A negative End means the end of the sequence.
type Slice struct {
	Start, End int
}

// Apply returns the sub-sequence selected by the slice.
func (s *Slice) Apply(seq string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(seq) {
		end = len(seq)
	}
	if start > end {
		start = end
	}
	return seq[start:end]
}

// ScoreSeq computes the score of a single sequence, restricted to sl
// first when it is not nil.
func ScoreSeq(m ScalarScorer, seq string, sl *Slice) (float64, error) {
	if sl != nil {
		seq = sl.Apply(seq)
	}
	return m.Score(seq)
}

// ScoreSeqs computes the score of every sequence independently,
// preserving input order.
func ScoreSeqs(m ScalarScorer, seqs []string, sl *Slice) ([]float64, error) {
	res := make([]float64, len(seqs))
	for i, seq := range seqs {
		s, err := ScoreSeq(m, seq, sl)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

// VectorSeq computes the score vector of a single sequence,
// restricted to sl first when it is not nil.
func VectorSeq(m VectorScorer, seq string, sl *Slice) ([]float64, error) {
	if sl != nil {
		seq = sl.Apply(seq)
	}
	return m.Vector(seq)
}

// VectorSeqs computes the score vector of every sequence
// independently, preserving input order.
func VectorSeqs(m VectorScorer, seqs []string, sl *Slice) ([][]float64, error) {
	res := make([][]float64, len(seqs))
	for i, seq := range seqs {
		v, err := VectorSeq(m, seq, sl)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
