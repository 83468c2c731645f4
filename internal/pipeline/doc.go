// Package pipeline sequences the filter stages: load → annotate → aggregate
// → cryptic → knockdown → rescue. Every stage is a pure function from one
// immutable table to the next; the pipeline only wires them together and
// accounts for survivors. Results come out sorted by genomic coordinate, so
// identical input and configuration always produce identical output.
package pipeline
