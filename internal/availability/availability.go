// Package availability maps provider batch answers onto per-candidate
// verdicts. Every candidate submitted yields exactly one outcome.
package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexhunt/lexhuntcli/internal/candidate"
	"github.com/lexhunt/lexhuntcli/internal/registrar"
)

type Verdict string

const (
	VerdictAvailable Verdict = "available"
	VerdictTaken     Verdict = "taken"
	VerdictUnknown   Verdict = "unknown"
)

// Outcome is the checked result for one candidate.
type Outcome struct {
	Candidate  candidate.Candidate
	Verdict    Verdict
	Definitive bool

	PriceMicros int64
	Currency    string
	PeriodYears int

	// Detail explains unknown verdicts (provider skip, batch failure).
	Detail string
}

// Domain is the fully-qualified name the outcome describes.
func (o Outcome) Domain() string { return o.Candidate.Domain() }

// BatchError reports that an entire batch call failed. The candidates
// it carried were all degraded to unknown, never dropped.
type BatchError struct {
	Batch      int // zero-based batch index
	Candidates int
	Err        error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d (%d candidates): %v", e.Batch+1, e.Candidates, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// Checker runs batches through one registrar client.
type Checker struct {
	reg registrar.Client
}

func NewChecker(reg registrar.Client) *Checker {
	return &Checker{reg: reg}
}

// CheckBatch issues exactly one provider call for the batch and returns
// one outcome per candidate, preserving batch order. A candidate the
// provider did not answer maps to unknown. If the call itself fails,
// every candidate maps to unknown and the error is returned as a
// *BatchError alongside the outcomes; callers decide whether to stop.
func (c *Checker) CheckBatch(ctx context.Context, idx int, batch candidate.Batch) ([]Outcome, error) {
	checks, err := c.reg.CheckDomains(ctx, batch.Domains())
	if err != nil {
		out := make([]Outcome, len(batch))
		for i, cand := range batch {
			out[i] = Outcome{
				Candidate: cand,
				Verdict:   VerdictUnknown,
				Detail:    "batch call failed",
			}
		}
		return out, &BatchError{Batch: idx, Candidates: len(batch), Err: err}
	}

	byDomain := make(map[string]registrar.DomainCheck, len(checks))
	for _, dc := range checks {
		byDomain[strings.ToLower(dc.Domain)] = dc
	}

	out := make([]Outcome, len(batch))
	for i, cand := range batch {
		dc, ok := byDomain[cand.Domain()]
		if !ok {
			out[i] = Outcome{
				Candidate: cand,
				Verdict:   VerdictUnknown,
				Detail:    "no answer from provider",
			}
			continue
		}
		v := VerdictTaken
		if dc.Available {
			v = VerdictAvailable
		}
		out[i] = Outcome{
			Candidate:   cand,
			Verdict:     v,
			Definitive:  dc.Definitive,
			PriceMicros: dc.PriceMicros,
			Currency:    dc.Currency,
			PeriodYears: dc.PeriodYears,
		}
	}
	return out, nil
}
