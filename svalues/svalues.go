// Package svalues provides the tRNA-codon coupling coefficient sets
// used by the tRNA adaptation index. Each named set is an embedded,
// versioned table keyed by the anticodon wobble base and the codon
// third-position base.
package svalues

import (
	"embed"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed dosreis.csv tuller.csv
var files embed.FS

// DosReis selects the original coefficients (dos Reis, Savva &
// Wernisch, NAR, 2004); Tuller selects the refit against protein
// abundance (Tuller et al., Genome Biology, 2011).
const (
	DosReis = "dosReis"
	Tuller  = "Tuller"
)

// Coefficient describes the efficiency of coupling between a tRNA and
// a codon at the wobble position.
type Coefficient struct {
	// Anti is the anticodon first (wobble) base, Cod the codon
	// third base, DNA alphabet.
	Anti, Cod byte
	// Weight is the selective constraint in [0, 1]; the pairing
	// contributes proportionally to 1-Weight.
	Weight float64
	// MinDeg is the minimal degeneracy of the codon's amino-acid
	// group for the pairing to apply.
	MinDeg int
	// Prokaryote marks pairings that only occur in prokaryotes.
	Prokaryote bool
}

// Load returns the named coefficient set.
func Load(name string) ([]Coefficient, error) {
	var file string
	switch name {
	case DosReis:
		file = "dosreis.csv"
	case Tuller:
		file = "tuller.csv"
	default:
		return nil, errors.Errorf("unknown s-values set: %s", name)
	}

	f, err := files.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "opening s-values set %s", name)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comment = '#'
	records, err := rd.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing s-values set %s", name)
	}
	if len(records) < 2 {
		return nil, errors.Errorf("s-values set %s is empty", name)
	}

	// skip the header row
	coefs := make([]Coefficient, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 5 {
			return nil, errors.Errorf("s-values set %s: expected 5 columns, got %d", name, len(rec))
		}
		weight, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "s-values set %s: weight", name)
		}
		minDeg, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, errors.Wrapf(err, "s-values set %s: min_deg", name)
		}
		prok, err := strconv.ParseBool(rec[4])
		if err != nil {
			return nil, errors.Wrapf(err, "s-values set %s: prokaryote", name)
		}
		anti := normBase(rec[0])
		cod := normBase(rec[1])
		if anti == 0 || cod == 0 {
			return nil, errors.Errorf("s-values set %s: bad base pair %q/%q", name, rec[0], rec[1])
		}
		coefs = append(coefs, Coefficient{
			Anti:       anti,
			Cod:        cod,
			Weight:     weight,
			MinDeg:     minDeg,
			Prokaryote: prok,
		})
	}
	return coefs, nil
}

// normBase converts a single-letter base to the capital DNA alphabet,
// zero when it is not a valid base.
func normBase(s string) byte {
	s = strings.Replace(strings.ToUpper(strings.TrimSpace(s)), "U", "T", -1)
	if len(s) != 1 || strings.IndexByte("ACGT", s[0]) < 0 {
		return 0
	}
	return s[0]
}
