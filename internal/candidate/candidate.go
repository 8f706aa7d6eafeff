// Package candidate turns words and TLDs into the ordered sequence of
// domain candidates to query, and partitions that sequence into batches
// honoring the provider's per-call cap.
package candidate

import "fmt"

// ConfigError reports invalid pipeline input (empty word set, empty TLD
// set, non-positive batch size). It is fatal: nothing is queried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "config: " + e.Reason }

// Candidate is one word+TLD combination.
type Candidate struct {
	Word string
	TLD  string
}

// Domain is the fully-qualified name sent to the provider.
func (c Candidate) Domain() string { return c.Word + c.TLD }

// Batch is a contiguous, size-bounded slice of the candidate sequence.
type Batch []Candidate

// Domains returns the batch's domain strings in batch order.
func (b Batch) Domains() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Domain()
	}
	return out
}

// Build produces the full candidate sequence in TLD-major order: every
// word for the first TLD, then every word for the next TLD, and so on.
// The order is stable and determines batch composition, so batches stay
// within one TLD until its word list is exhausted. Words are expected
// pre-normalized (lowercase, alphabetic); TLDs carry their leading dot.
func Build(words, tlds []string) ([]Candidate, error) {
	if len(words) == 0 {
		return nil, &ConfigError{Reason: "no words to check"}
	}
	if len(tlds) == 0 {
		return nil, &ConfigError{Reason: "no TLDs to check"}
	}

	out := make([]Candidate, 0, len(words)*len(tlds))
	for _, tld := range tlds {
		for _, w := range words {
			out = append(out, Candidate{Word: w, TLD: tld})
		}
	}
	return out, nil
}

// Partition splits cands into ceil(len/size) contiguous batches. Every
// batch holds exactly size candidates except possibly the last.
// Concatenating the batches in order reproduces cands exactly.
func Partition(cands []Candidate, size int) ([]Batch, error) {
	if size <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("batch size must be positive, got %d", size)}
	}

	batches := make([]Batch, 0, (len(cands)+size-1)/size)
	for start := 0; start < len(cands); start += size {
		end := start + size
		if end > len(cands) {
			end = len(cands)
		}
		batches = append(batches, Batch(cands[start:end]))
	}
	return batches, nil
}
