// Package hunt drives the availability pipeline: build candidates,
// batch them, pace the provider calls, and aggregate the report.
package hunt

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexhunt/lexhuntcli/internal/availability"
	"github.com/lexhunt/lexhuntcli/internal/candidate"
	"github.com/lexhunt/lexhuntcli/internal/pace"
	"github.com/lexhunt/lexhuntcli/internal/registrar"
	"github.com/lexhunt/lexhuntcli/internal/report"
)

// Options is the immutable run configuration.
type Options struct {
	Words []string
	TLDs  []string

	// BatchSize defaults to the registrar's cap and may not exceed it.
	BatchSize int

	// Delay is the minimum gap between batch submissions.
	Delay time.Duration

	Registrar registrar.Client
	Logger    zerolog.Logger

	// Store, when set, receives the final report snapshot; with
	// SaveEachBatch it also receives one after every batch, so an
	// interrupted run keeps what it found.
	Store         report.Store
	SaveEachBatch bool
}

// Summary describes a completed run. A run with FailedBatches > 0
// finished but is missing verdicts for those batches' candidates.
type Summary struct {
	Candidates    int
	Batches       int
	FailedBatches int
	Found         int
	Report        report.Report
}

func (s Summary) Degraded() bool { return s.FailedBatches > 0 }

type Runner struct {
	opts    Options
	checker *availability.Checker
	pacer   *pace.Pacer
}

// New validates the configuration; all configuration failures surface
// here, before any network activity.
func New(opts Options) (*Runner, error) {
	if opts.Registrar == nil {
		return nil, &candidate.ConfigError{Reason: "no registrar client"}
	}
	provCap := opts.Registrar.BatchCap()
	if opts.BatchSize == 0 {
		opts.BatchSize = provCap
	}
	if opts.BatchSize <= 0 {
		return nil, &candidate.ConfigError{Reason: fmt.Sprintf("batch size must be positive, got %d", opts.BatchSize)}
	}
	if provCap > 0 && opts.BatchSize > provCap {
		return nil, &candidate.ConfigError{Reason: fmt.Sprintf("batch size %d exceeds provider cap %d", opts.BatchSize, provCap)}
	}
	if len(opts.Words) == 0 {
		return nil, &candidate.ConfigError{Reason: "no words to check"}
	}
	if len(opts.TLDs) == 0 {
		return nil, &candidate.ConfigError{Reason: "no TLDs to check"}
	}

	return &Runner{
		opts:    opts,
		checker: availability.NewChecker(opts.Registrar),
		pacer:   pace.New(opts.Delay),
	}, nil
}

// Run processes every batch in order. Per-batch provider failures are
// logged and degrade the summary; only cancellation or a persistence
// failure on the final snapshot aborts the run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	log := r.opts.Logger

	cands, err := candidate.Build(r.opts.Words, r.opts.TLDs)
	if err != nil {
		return Summary{}, err
	}
	batches, err := candidate.Partition(cands, r.opts.BatchSize)
	if err != nil {
		return Summary{}, err
	}

	log.Info().
		Int("words", len(r.opts.Words)).
		Int("tlds", len(r.opts.TLDs)).
		Int("candidates", len(cands)).
		Int("batches", len(batches)).
		Msg("starting hunt")

	agg := report.NewAggregator(r.opts.TLDs)
	sum := Summary{Candidates: len(cands), Batches: len(batches)}
	processed := 0

	for i, batch := range batches {
		if err := r.pacer.Wait(ctx); err != nil {
			sum.Found = agg.Found()
			sum.Report = agg.Snapshot()
			return sum, fmt.Errorf("hunt interrupted: %w", err)
		}

		outcomes, err := r.checker.CheckBatch(ctx, i, batch)
		r.pacer.Done()
		if err != nil {
			sum.FailedBatches++
			log.Error().
				Err(err).
				Int("batch", i+1).
				Int("candidates", len(batch)).
				Msg("batch failed, continuing")
		}

		for _, o := range outcomes {
			switch o.Verdict {
			case availability.VerdictAvailable:
				log.Info().Str("domain", o.Domain()).Msg("available")
			case availability.VerdictTaken:
				log.Debug().Str("domain", o.Domain()).Msg("taken")
			default:
				log.Debug().Str("domain", o.Domain()).Str("detail", o.Detail).Msg("unknown")
			}
			agg.Record(o)
		}
		processed += len(batch)

		log.Info().
			Int("batch", i+1).
			Int("batches", len(batches)).
			Int("processed", processed).
			Int("total", len(cands)).
			Int("found", agg.Found()).
			Msg("progress")

		if r.opts.SaveEachBatch && r.opts.Store != nil {
			if err := r.opts.Store.Save(agg.Snapshot()); err != nil {
				log.Warn().Err(err).Msg("incremental save failed")
			}
		}
	}

	sum.Found = agg.Found()
	sum.Report = agg.Snapshot()

	if r.opts.Store != nil {
		if err := r.opts.Store.Save(sum.Report); err != nil {
			return sum, fmt.Errorf("save report: %w", err)
		}
	}

	log.Info().
		Int("found", sum.Found).
		Int("failed_batches", sum.FailedBatches).
		Int("batches", sum.Batches).
		Msg("hunt complete")

	return sum, nil
}
