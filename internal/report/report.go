// Package report accumulates available domains per TLD and persists the
// final report.
package report

import (
	"github.com/lexhunt/lexhuntcli/internal/availability"
)

// Report maps a TLD (with leading dot) to its available domains in the
// order they were found. This shape is the output compatibility
// contract; it marshals to {".com": ["cat.com", ...], ...}.
type Report map[string][]string

// Aggregator grows a Report as batch outcomes arrive. Buckets exist for
// every TLD handed to NewAggregator even when nothing was found, and
// only grow within a run.
type Aggregator struct {
	buckets Report
	found   int
}

func NewAggregator(tlds []string) *Aggregator {
	buckets := make(Report, len(tlds))
	for _, tld := range tlds {
		buckets[tld] = []string{}
	}
	return &Aggregator{buckets: buckets}
}

// Record appends the outcome's domain to its TLD bucket when the
// verdict is available; every other verdict is a no-op.
func (a *Aggregator) Record(o availability.Outcome) {
	if o.Verdict != availability.VerdictAvailable {
		return
	}
	tld := o.Candidate.TLD
	a.buckets[tld] = append(a.buckets[tld], o.Domain())
	a.found++
}

// Found is the number of available domains recorded so far.
func (a *Aggregator) Found() int { return a.found }

// Snapshot returns a copy of the current report, safe to persist while
// later batches keep recording.
func (a *Aggregator) Snapshot() Report {
	out := make(Report, len(a.buckets))
	for tld, domains := range a.buckets {
		cp := make([]string, len(domains))
		copy(cp, domains)
		out[tld] = cp
	}
	return out
}
