// core/junction/junction.go
package junction

import (
	"fmt"
	"strings"
)

// Condition labels one of the three experimental arms.
type Condition string

const (
	Control   Condition = "control"
	Knockdown Condition = "siTDP43"
	Rescue    Condition = "rescue-induced"
)

// Conditions lists the three arms in canonical order. Aggregation and output
// columns follow this order everywhere.
var Conditions = [3]Condition{Control, Knockdown, Rescue}

// Index returns the canonical position of c in Conditions, or -1.
func (c Condition) Index() int {
	for i, v := range Conditions {
		if v == c {
			return i
		}
	}
	return -1
}

var condReplacer = strings.NewReplacer("-", "", "_", "", " ", "", ".", "")

// ParseCondition normalizes a free-form label to one of the three conditions.
// Case, dashes, underscores and spaces are ignored, so "siTDP43",
// "si_tdp43", "rescueInduced" and "Rescue-Induced" all resolve.
func ParseCondition(s string) (Condition, bool) {
	switch condReplacer.Replace(strings.ToLower(strings.TrimSpace(s))) {
	case "control", "ctrl", "untreated", "nt":
		return Control, true
	case "sitdp43", "tdp43kd", "knockdown", "kd":
		return Knockdown, true
	case "rescueinduced", "rescue", "rescueexpression":
		return Rescue, true
	}
	return "", false
}

// Key identifies a splice junction. Donor and Acceptor are the first and the
// last intronic base in genomic orientation (1-based, donor < acceptor for
// well-formed input). Strand is part of the identity and is never inferred.
type Key struct {
	Chrom    string
	Donor    int
	Acceptor int
	Strand   byte // '+' or '-'
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d-%d(%c)", k.Chrom, k.Donor, k.Acceptor, k.Strand)
}

// Less orders keys by (chrom, donor, acceptor, strand) for reproducible
// output across runs.
func Less(a, b Key) bool {
	if a.Chrom != b.Chrom {
		return a.Chrom < b.Chrom
	}
	if a.Donor != b.Donor {
		return a.Donor < b.Donor
	}
	if a.Acceptor != b.Acceptor {
		return a.Acceptor < b.Acceptor
	}
	return a.Strand < b.Strand
}

// ParseStrand validates a strand token.
func ParseStrand(s string) (byte, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return '+', true
	case "-":
		return '-', true
	}
	return 0, false
}

// Observation is one raw input row: one junction seen in one sample. Rows are
// immutable after load.
type Observation struct {
	Key       Key
	SampleID  string
	Condition Condition
	Count     int
	Gene      string
	Replicate string
}
