package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexhunt/lexhuntcli/internal/availability"
	"github.com/lexhunt/lexhuntcli/internal/candidate"
	"github.com/lexhunt/lexhuntcli/internal/domain"
	"github.com/lexhunt/lexhuntcli/internal/pace"
)

func newCheckCmd(cfg *appConfig) *cobra.Command {
	var availableOnly bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [domain...]",
		Short: "Check availability for explicit domains (args and/or stdin)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readDomainsFromArgsAndStdin(args, os.Stdin)
			if err != nil {
				return fatalErr(fmt.Errorf("failed to read domains: %w", err))
			}
			if len(inputs) == 0 {
				return &cliError{Code: 2, ShowUsage: true, Cmd: cmd}
			}

			cands := make([]candidate.Candidate, 0, len(inputs))
			for _, in := range inputs {
				ascii, err := domain.Normalize(in)
				if err != nil {
					return usageErr(cmd, fmt.Errorf("invalid domain %q: %w", in, err))
				}
				i := strings.LastIndexByte(ascii, '.')
				cands = append(cands, candidate.Candidate{Word: ascii[:i], TLD: ascii[i:]})
			}

			if err := cfg.connect(); err != nil {
				return err
			}

			batches, err := candidate.Partition(cands, cfg.BatchSize)
			if err != nil {
				return usageErr(cmd, err)
			}

			checker := availability.NewChecker(cfg.registrar)
			pacer := pace.New(cfg.Delay)

			var outcomes []availability.Outcome
			failed := 0
			for i, batch := range batches {
				if err := pacer.Wait(cmd.Context()); err != nil {
					return fatalErr(err)
				}
				out, err := checker.CheckBatch(cmd.Context(), i, batch)
				pacer.Done()
				if err != nil {
					failed++
					cfg.logger.Error().Err(err).Int("batch", i+1).Msg("batch failed, continuing")
				}
				outcomes = append(outcomes, out...)
			}

			if availableOnly {
				filtered := outcomes[:0]
				for _, o := range outcomes {
					if o.Verdict == availability.VerdictAvailable {
						filtered = append(filtered, o)
					}
				}
				outcomes = filtered
			}

			if err := writeOutcomes(os.Stdout, cfg.outFormat, outcomes); err != nil {
				return fatalErr(fmt.Errorf("failed to write output: %w", err))
			}

			if strict {
				if failed > 0 {
					return &cliError{Code: 1}
				}
				for _, o := range outcomes {
					if o.Verdict == availability.VerdictUnknown {
						return &cliError{Code: 1}
					}
				}
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().BoolVar(&availableOnly, "available-only", false, "Only output available domains")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any result is unknown")

	return cmd
}
