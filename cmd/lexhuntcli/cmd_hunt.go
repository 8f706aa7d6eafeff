package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexhunt/lexhuntcli/internal/hunt"
	"github.com/lexhunt/lexhuntcli/internal/report"
	"github.com/lexhunt/lexhuntcli/internal/wordlist"
)

func newHuntCmd(cfg *appConfig) *cobra.Command {
	var (
		dictPath    string
		length      int
		minLength   int
		maxLength   int
		tldsStr     string
		outPath     string
		incremental bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Check availability of dictionary words across TLDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := wordlist.Filter{Length: length, MinLength: minLength, MaxLength: maxLength}
			if length == 0 && minLength == 0 {
				return usageErr(cmd, fmt.Errorf("either --length or --min-length is required"))
			}
			if err := filter.Validate(); err != nil {
				return usageErr(cmd, err)
			}

			if dictPath == "" {
				dictPath = cfg.file.Dictionary
			}
			if dictPath == "" {
				return usageErr(cmd, fmt.Errorf("no dictionary file (use --dict or the config file)"))
			}

			tlds, err := resolveTLDs(cfg, tldsStr, cmd.Flags().Changed("tlds"))
			if err != nil {
				return usageErr(cmd, err)
			}

			if err := cfg.connect(); err != nil {
				return err
			}

			cfg.logger.Info().Str("dict", dictPath).Msg("loading dictionary")
			words, err := wordlist.Load(dictPath, filter)
			if err != nil {
				return fatalErr(err)
			}
			if len(words) == 0 {
				return fatalErr(fmt.Errorf("no words in %s match the length criteria", dictPath))
			}
			cfg.logger.Info().Int("words", len(words)).Msg("dictionary loaded")

			if outPath == "" {
				outPath = cfg.file.Output
			}
			if outPath == "" {
				outPath = defaultOutput
			}
			var store report.Store
			if outPath != "-" {
				store = report.FileStore{Path: outPath}
			}

			runner, err := hunt.New(hunt.Options{
				Words:         words,
				TLDs:          tlds,
				BatchSize:     cfg.BatchSize,
				Delay:         cfg.Delay,
				Registrar:     cfg.registrar,
				Logger:        cfg.logger,
				Store:         store,
				SaveEachBatch: incremental,
			})
			if err != nil {
				return usageErr(cmd, err)
			}

			sum, err := runner.Run(cmd.Context())
			if err != nil {
				return fatalErr(err)
			}

			if outPath == "-" {
				if err := writeReport(os.Stdout, cfg.outFormat, sum.Report); err != nil {
					return fatalErr(fmt.Errorf("failed to write report: %w", err))
				}
			} else {
				cfg.logger.Info().Str("path", outPath).Msg("report saved")
			}

			if sum.Degraded() {
				cfg.logger.Warn().
					Int("failed_batches", sum.FailedBatches).
					Int("batches", sum.Batches).
					Msgf("%d of %d batches degraded to unknown", sum.FailedBatches, sum.Batches)
				if strict {
					return &cliError{Code: 1}
				}
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(usageErr)
	cmd.Flags().StringVar(&dictPath, "dict", "", "Path to the dictionary word list")
	cmd.Flags().IntVar(&length, "length", 0, "Exact word length")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum word length")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum word length (requires --min-length)")
	cmd.Flags().StringVar(&tldsStr, "tlds", defaultTLDs, "Comma-separated TLDs to check")
	cmd.Flags().StringVar(&outPath, "out", "", "Report file path ("+defaultOutput+" by default, - for stdout)")
	cmd.Flags().BoolVar(&incremental, "incremental", false, "Rewrite the report file after every batch")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any batch degraded")

	return cmd
}

// resolveTLDs prefers the flag when set, then the config file, then the
// built-in default.
func resolveTLDs(cfg *appConfig, flagVal string, flagSet bool) ([]string, error) {
	if !flagSet && len(cfg.file.TLDs) > 0 {
		return parseTLDList(strings.Join(cfg.file.TLDs, ","))
	}
	tlds, err := parseTLDList(flagVal)
	if err != nil {
		return nil, err
	}
	if len(tlds) == 0 {
		return nil, fmt.Errorf("no TLDs specified (use --tlds)")
	}
	return tlds, nil
}
