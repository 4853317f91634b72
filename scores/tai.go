package scores

import (
	"errors"
	"math"
	"strings"

	"bitbucket.org/Davydov/codonbias/bio"
	"bitbucket.org/Davydov/codonbias/gtrnadb"
	"bitbucket.org/Davydov/codonbias/stats"
	"bitbucket.org/Davydov/codonbias/svalues"
)

// TrnaAdaptationIndex is the tAI model (dos Reis, Savva & Wernisch,
// NAR, 2004). Every codon is weighted by the availability of tRNAs
// able to translate it, approximated by gene copy numbers and the
// wobble coupling constraints of the selected s-values set. The score
// of a sequence is the counts-weighted geometric mean of these
// weights and lies in (0, 1].
type TrnaAdaptationIndex struct {
	counter    *stats.CodonCounter
	weights    map[string]float64
	logWeights map[string]float64
}

// NewTrnaAdaptationIndex fits tAI from explicit tRNA gene copy
// numbers per anticodon. sValues selects the coefficient set
// (svalues.DosReis or svalues.Tuller). Set prokaryote for organisms
// where prokaryote-only wobble pairings apply.
func NewTrnaAdaptationIndex(tGCN []gtrnadb.GeneCopyNumber, prokaryote bool,
	sValues string, gCodeID int) (*TrnaAdaptationIndex, error) {
	if len(tGCN) == 0 {
		return nil, errors.New("must provide either: tRNA gene copy numbers, a GtRNAdb url, or a GtRNAdb domain and genome id")
	}

	counter, err := stats.NewCodonCounter(gCodeID, 1, true)
	if err != nil {
		return nil, err
	}

	coefs, err := svalues.Load(sValues)
	if err != nil {
		return nil, err
	}
	if !prokaryote {
		kept := coefs[:0]
		for _, c := range coefs {
			if !c.Prokaryote {
				kept = append(kept, c)
			}
		}
		coefs = kept
	}

	t := &TrnaAdaptationIndex{counter: counter}
	t.weights = t.calcWeights(tGCN, coefs)
	t.logWeights = make(map[string]float64, len(t.weights))
	for codon, w := range t.weights {
		t.logWeights[codon] = math.Log(w)
	}
	log.Infof("tAI: %d anticodons, %d coupling coefficients", len(tGCN), len(coefs))

	return t, nil
}

// NewTrnaAdaptationIndexFromDB fits tAI on gene copy numbers fetched
// from GtRNAdb, identified either by a page URL or by a taxonomic
// domain and genome ID. The fetch happens once, here.
func NewTrnaAdaptationIndexFromDB(url, domain, genomeID string, prokaryote bool,
	sValues string, gCodeID int) (*TrnaAdaptationIndex, error) {
	if url == "" {
		if domain == "" || genomeID == "" {
			return nil, errors.New("must provide either: tRNA gene copy numbers, a GtRNAdb url, or a GtRNAdb domain and genome id")
		}
		url = gtrnadb.GenomeURL(domain, genomeID)
	}
	tGCN, err := gtrnadb.Fetch(url)
	if err != nil {
		return nil, err
	}
	return NewTrnaAdaptationIndex(tGCN, prokaryote, sValues, gCodeID)
}

// calcWeights accumulates, for every codon, the gene copy numbers of
// all anticodons able to translate it, scaled by the coupling
// efficiency at the wobble position. Anticodons are matched by the
// reverse-complement relationship of the first two codon positions,
// coefficients by the third. Weights are normalized by their maximum;
// codons left at zero receive the geometric mean of the nonzero
// finite weights so they cannot collapse a geometric-mean score.
func (t *TrnaAdaptationIndex) calcWeights(tGCN []gtrnadb.GeneCopyNumber,
	coefs []svalues.Coefficient) map[string]float64 {
	domain := t.counter.Domain()
	deg := t.counter.Count().AATable(false, 0).GroupSizes()

	weights := make(map[string]float64, len(domain))
	for _, codon := range domain {
		weights[codon] = 0
	}

	for _, gcn := range tGCN {
		anti := strings.Replace(strings.ToUpper(gcn.AntiCodon), "U", "T", -1)
		if len(anti) != 3 {
			continue
		}
		cod12 := bio.ReverseComplement(anti)[:2]
		for _, codon := range domain {
			if codon[:2] != cod12 {
				continue
			}
			aa, _ := t.counter.AminoAcids(codon)
			for _, c := range coefs {
				if c.Anti != anti[0] || c.Cod != codon[2] || deg[aa] < c.MinDeg {
					continue
				}
				weights[codon] += (1 - c.Weight) * gcn.GCN
			}
		}
	}

	max := 0.0
	for _, codon := range domain {
		if weights[codon] > max {
			max = weights[codon]
		}
	}
	logSum, logN := 0.0, 0
	for _, codon := range domain {
		weights[codon] /= max
		w := weights[codon]
		if w != 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
			logSum += math.Log(w)
			logN++
		}
	}
	gmean := math.Exp(logSum / float64(logN))
	for _, codon := range domain {
		if weights[codon] == 0 {
			weights[codon] = gmean
		}
	}
	return weights
}

// Score returns the counts-weighted geometric mean of the query's
// codon weights.
func (t *TrnaAdaptationIndex) Score(seq string) (float64, error) {
	counts := t.counter.Count(seq)
	logs, weights := alignTables(t.counter.Domain(), t.logWeights, counts.Counts)
	return geoMean(logs, weights), nil
}

// Vector returns the weight at every codon position.
func (t *TrnaAdaptationIndex) Vector(seq string) ([]float64, error) {
	return lookupVector(t.weights, t.counter.Windows(seq)), nil
}
