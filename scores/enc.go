package scores

import (
	"math"
	"sort"

	"bitbucket.org/Davydov/codonbias/stats"
)

// EffectiveNumberOfCodons is the ENC model (Wright, Gene, 1990) with
// the background correction by Novembre (MBE, 2002). The score is the
// effective number of codons in use, from 20 (a single codon per
// amino acid, standard code) up to 61 (uniform usage). No reference
// corpus is needed; with bgCorrection the background codon
// composition is estimated from the scored sequence itself (or from
// an explicit background sequence), otherwise codons are expected
// uniformly within each amino-acid group.
type EffectiveNumberOfCodons struct {
	counter      *stats.CodonCounter
	bgCorrection bool
	aaDeg        map[string]int
	degCount     map[int]int
	bccUnif      map[string]float64
}

// fMin is the smallest homogeneity value still considered a valid
// observation.
const fMin = 1e-6

// NewEffectiveNumberOfCodons creates an ENC model for the given
// genetic code. The score is not defined for stop codons, so they are
// always excluded.
func NewEffectiveNumberOfCodons(bgCorrection bool, gCodeID int) (*EffectiveNumberOfCodons, error) {
	counter, err := stats.NewCodonCounter(gCodeID, 1, true)
	if err != nil {
		return nil, err
	}

	e := &EffectiveNumberOfCodons{
		counter:      counter,
		bgCorrection: bgCorrection,
	}

	e.aaDeg = counter.Count().AATable(false, 0).GroupSizes()
	e.degCount = make(map[int]int)
	for _, deg := range e.aaDeg {
		e.degCount[deg]++
	}

	uniform := stats.CountNucleotides("").Freq(1)
	e.bccUnif = e.calcBCC(uniform)

	return e, nil
}

// calcBCC computes the background codon composition from independent
// per-position base probabilities, renormalized within each
// amino-acid group.
func (e *EffectiveNumberOfCodons) calcBCC(bnc map[byte]float64) map[string]float64 {
	domain := e.counter.Domain()
	bcc := make(map[string]float64, len(domain))
	groupSum := make(map[string]float64, len(e.aaDeg))
	for _, codon := range domain {
		p := bnc[codon[0]] * bnc[codon[1]] * bnc[codon[2]]
		bcc[codon] = p
		aa, _ := e.counter.AminoAcids(codon)
		groupSum[aa] += p
	}
	for _, codon := range domain {
		aa, _ := e.counter.AminoAcids(codon)
		bcc[codon] /= groupSum[aa]
	}
	return bcc
}

// Score computes ENC with the background estimated from the sequence
// itself.
func (e *EffectiveNumberOfCodons) Score(seq string) (float64, error) {
	return e.ScoreWithBackground(seq, "")
}

// ScoreWithBackground computes ENC using an explicit background
// sequence for the Novembre correction. An empty background falls
// back to the scored sequence. The background is ignored unless the
// model was built with bgCorrection.
func (e *EffectiveNumberOfCodons) ScoreWithBackground(seq, background string) (float64, error) {
	if background == "" {
		background = seq
	}
	counts := e.counter.Count(seq).AATable(false, 0)
	n := counts.GroupSums()

	var bcc map[string]float64
	if e.bgCorrection {
		bcc = e.calcBCC(stats.CountNucleotides(background).Freq(1))
	} else {
		bcc = e.bccUnif
	}

	// chi-square homogeneity statistic per amino acid (Novembre 2002)
	chi2 := make(map[string]float64, len(e.aaDeg))
	for _, codon := range e.counter.Domain() {
		aa, _ := e.counter.AminoAcids(codon)
		if n[aa] == 0 {
			continue
		}
		p := counts.Freq[codon] / n[aa]
		d := p - bcc[codon]
		chi2[aa] += d * d / bcc[codon]
	}

	// average F within each degeneracy class; amino acids need at
	// least 2 observations and a valid F to be included
	classSum := make(map[int]float64)
	classN := make(map[int]int)
	for aa, deg := range e.aaDeg {
		if n[aa] <= 1 {
			continue
		}
		f := (n[aa]*chi2[aa] + n[aa] - float64(deg)) / ((n[aa] - 1) * float64(deg))
		if f <= fMin || math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		classSum[deg] += f
		classN[deg]++
	}

	degs := make([]int, 0, len(e.degCount))
	for deg := range e.degCount {
		degs = append(degs, deg)
	}
	sort.Ints(degs)

	// missing classes fall back to 1/deg; a missing 3-fold class is
	// interpolated from the (possibly fallen-back) 2- and 4-fold ones
	classF := make(map[int]float64, len(degs))
	miss3 := false
	for _, deg := range degs {
		if classN[deg] > 0 {
			classF[deg] = classSum[deg] / float64(classN[deg])
		} else {
			classF[deg] = 1 / float64(deg)
			if deg == 3 {
				miss3 = true
			}
		}
	}
	if miss3 {
		f2, ok2 := classF[2]
		f4, ok4 := classF[4]
		if ok2 && ok4 {
			classF[3] = 0.5 * (f2 + f4)
		}
	}

	enc := 0.0
	for _, deg := range degs {
		enc += float64(e.degCount[deg]) / classF[deg]
	}
	return math.Min(float64(len(e.counter.Domain())), enc), nil
}
