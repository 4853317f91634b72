package scores

import (
	"math"

	"bitbucket.org/Davydov/codonbias/stats"
)

// CodonAdaptationIndex is the CAI model (Sharp & Li, NAR, 1987).
// Every codon is weighted by its reference frequency relative to the
// most frequent codon of its synonymous group; the score of a
// sequence is the counts-weighted geometric mean of these weights and
// lies in (0, 1]. The model generalizes to codon k-mers, with
// grouping applied at the amino-acid k-mer level.
type CodonAdaptationIndex struct {
	counter    *stats.CodonCounter
	weights    map[string]float64
	logWeights map[string]float64
}

// NewCodonAdaptationIndex fits CAI on a reference set of coding
// sequences.
func NewCodonAdaptationIndex(refSeqs []string, k, gCodeID int,
	ignoreStop bool, pseudocount float64) (*CodonAdaptationIndex, error) {
	counter, err := stats.NewCodonCounter(gCodeID, k, ignoreStop)
	if err != nil {
		return nil, err
	}

	tbl := counter.Count(refSeqs...).AATable(true, pseudocount)
	max := tbl.GroupMax()

	weights := make(map[string]float64, len(tbl.Freq))
	logWeights := make(map[string]float64, len(tbl.Freq))
	for _, kmer := range counter.Domain() {
		w := tbl.Freq[kmer] / max[tbl.Group[kmer]]
		weights[kmer] = w
		logWeights[kmer] = math.Log(w)
	}

	return &CodonAdaptationIndex{
		counter:    counter,
		weights:    weights,
		logWeights: logWeights,
	}, nil
}

// Score returns the counts-weighted geometric mean of the query's
// k-mer weights.
func (c *CodonAdaptationIndex) Score(seq string) (float64, error) {
	counts := c.counter.Count(seq)
	logs, weights := alignTables(c.counter.Domain(), c.logWeights, counts.Counts)
	return geoMean(logs, weights), nil
}

// Vector returns the weight at every codon position, looked up by the
// k-mer starting at that position.
func (c *CodonAdaptationIndex) Vector(seq string) ([]float64, error) {
	return lookupVector(c.weights, c.counter.Windows(seq)), nil
}
