package scores

import (
	"math"

	"bitbucket.org/Davydov/codonbias/stats"
)

// CodonPairBias is the CPB/CPS model (Coleman et al., Science, 2008),
// generalized to codon k-mers. Every k-mer is weighted by the
// log-ratio between its observed frequency and the frequency expected
// from its codons' marginals, discounted by the same ratio at the
// amino-acid level, so the weight captures codon pairing beyond what
// amino-acid pairing predicts. The score of a sequence is the
// counts-weighted mean of these weights: 0 means no bias, positive
// over-represented pairing, negative under-represented.
type CodonPairBias struct {
	counter *stats.CodonCounter
	weights map[string]float64
}

// NewCodonPairBias fits CPB on a reference set of coding sequences.
// k is the k-mer size, 2 in the original model.
func NewCodonPairBias(refSeqs []string, k, gCodeID int,
	ignoreStop bool, pseudocount float64) (*CodonPairBias, error) {
	counter, err := stats.NewCodonCounter(gCodeID, k, ignoreStop)
	if err != nil {
		return nil, err
	}

	c := &CodonPairBias{counter: counter}
	c.calcWeights(refSeqs, pseudocount)
	return c, nil
}

// calcWeights computes the codon pair score of every domain k-mer.
func (c *CodonPairBias) calcWeights(refSeqs []string, pseudocount float64) {
	domain := c.counter.Domain()
	counts := c.counter.Count(refSeqs...)

	pc := make(map[string]float64, len(domain))
	total := 0.0
	for _, kmer := range domain {
		pc[kmer] = counts.Counts[kmer] + pseudocount
		total += pc[kmer]
	}

	// joint and positional-marginal frequencies at the codon and the
	// amino-acid level; marginals are pooled over the k positions
	aaFreq := make(map[string]float64)
	codMarg := make(map[string]float64)
	aaMarg := make(map[string]float64)
	for _, kmer := range domain {
		aa, _ := c.counter.AminoAcids(kmer)
		aaFreq[aa] += pc[kmer] / total
		for i := 0; i < c.counter.K; i++ {
			codMarg[kmer[3*i:3*i+3]] += pc[kmer]
			aaMarg[aa[i:i+1]] += pc[kmer]
		}
	}
	margTotal := total * float64(c.counter.K)
	for cod := range codMarg {
		codMarg[cod] /= margTotal
	}
	for aa := range aaMarg {
		aaMarg[aa] /= margTotal
	}

	c.weights = make(map[string]float64, len(domain))
	for _, kmer := range domain {
		aa, _ := c.counter.AminoAcids(kmer)
		codInd, aaInd := 1.0, 1.0
		for i := 0; i < c.counter.K; i++ {
			codInd *= codMarg[kmer[3*i:3*i+3]]
			aaInd *= aaMarg[aa[i:i+1]]
		}
		c.weights[kmer] = math.Log(pc[kmer] / total / codInd * aaInd / aaFreq[aa])
	}
}

// Score returns the counts-weighted mean of the query's k-mer
// weights.
func (c *CodonPairBias) Score(seq string) (float64, error) {
	counts := c.counter.Count(seq)
	vals, weights := alignTables(c.counter.Domain(), c.weights, counts.Counts)
	return weightedMean(vals, weights), nil
}

// Vector returns the pair weight at every codon position, looked up
// by the k-mer starting at that position.
func (c *CodonPairBias) Vector(seq string) ([]float64, error) {
	return lookupVector(c.weights, c.counter.Windows(seq)), nil
}
