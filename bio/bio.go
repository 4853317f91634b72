// Package bio provides the genetic code and related sequence functions.
package bio

import (
	"bytes"
	"errors"
	"strings"
)

// alphabet is the nucleotide alphabet in the NCBI codon-table order.
var alphabet = [...]byte{'T', 'C', 'A', 'G'}

// complement maps a nucleotide to its complement.
var complement = map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// GeneticCode is a codon to amino-acid translation table. Stop codons
// are represented by '*'.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Map translates a codon (capital DNA letters) into an
	// amino-acid letter.
	Map map[string]byte
	// Starts holds alternative start codons.
	Starts map[string]bool
	// NCodon is the number of non-stop codons.
	NCodon int
}

// newGeneticCode creates a genetic code from the NCBI ncbieaa and
// sncbieaa strings (codons in T, C, A, G order, first position
// changing slowest).
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Map:       make(map[string]byte, 64),
		Starts:    make(map[string]bool),
	}
	i := 0
	for codon := range GetCodons() {
		aa := ncbieaa[i]
		gc.Map[codon] = aa
		if aa != '*' {
			gc.NCodon++
		}
		if sncbieaa[i] == 'M' {
			gc.Starts[codon] = true
		}
		i++
	}
	return gc
}

// GetCodons returns a channel with every codon (64) in the canonical
// NCBI order.
func GetCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.Map[codon] == '*'
}

// Degeneracy returns the number of synonymous codons coding for the
// same amino acid as the given codon, zero for an unknown codon.
func (gc *GeneticCode) Degeneracy(codon string) (deg int) {
	aa := gc.Map[codon]
	if aa == 0 {
		return 0
	}
	for _, a := range gc.Map {
		if a == aa {
			deg++
		}
	}
	return deg
}

// Translate translates a nucleotide sequence string into the protein
// string. An error is returned if the sequence is not divisible by
// three, a non-terminal stop-codon is found or a wrong codon is
// encountered.
func (gc *GeneticCode) Translate(nseq string) (string, error) {
	var buffer bytes.Buffer

	if len(nseq)%3 != 0 {
		return "", errors.New("sequence length doesn't divide by 3")
	}

	// Convert all the letters to uppercase and U->T.
	nseq = strings.Replace(strings.ToUpper(nseq), "U", "T", -1)

	for i := 0; i < len(nseq); i += 3 {
		aa := gc.Map[nseq[i:i+3]]
		if aa == 0 {
			return buffer.String(), errors.New("unknown codon")
		} else if aa == '*' {
			if i+3 >= len(nseq) {
				// it's ok if this is the last codon
				break
			}
			return buffer.String(), errors.New("premature stop codon")
		}
		buffer.WriteByte(aa)
	}
	return buffer.String(), nil
}

// ReverseComplement returns the reverse complement of a DNA sequence
// (capital letters, U converted to T). Unknown letters become N.
func ReverseComplement(seq string) string {
	seq = strings.Replace(strings.ToUpper(seq), "U", "T", -1)
	res := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complement[seq[len(seq)-1-i]]
		if !ok {
			c = 'N'
		}
		res[i] = c
	}
	return string(res)
}
