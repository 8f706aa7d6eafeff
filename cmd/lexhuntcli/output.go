package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/lexhunt/lexhuntcli/internal/availability"
	"github.com/lexhunt/lexhuntcli/internal/domain"
	"github.com/lexhunt/lexhuntcli/internal/report"
)

type outputFormat int

const (
	formatTable outputFormat = iota
	formatJSON
	formatPlain
)

func resolveFormat(flagVal string, stdout *os.File) outputFormat {
	switch strings.ToLower(strings.TrimSpace(flagVal)) {
	case "table":
		return formatTable
	case "json":
		return formatJSON
	case "plain":
		return formatPlain
	case "auto", "":
	default:
		// Unknown format: fall back to auto.
	}

	if term.IsTerminal(int(stdout.Fd())) {
		return formatTable
	}
	return formatJSON
}

type outcomeRow struct {
	Domain     string `json:"domain"`
	Verdict    string `json:"verdict"`
	Definitive bool   `json:"definitive,omitempty"`
	Price      string `json:"price,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

func toRow(o availability.Outcome) outcomeRow {
	row := outcomeRow{
		Domain:     o.Domain(),
		Verdict:    string(o.Verdict),
		Definitive: o.Definitive,
		Detail:     o.Detail,
	}
	if o.PriceMicros > 0 {
		row.Price = fmt.Sprintf("%.2f", float64(o.PriceMicros)/1e6)
		if o.Currency != "" {
			row.Price += " " + o.Currency
		}
	}
	return row
}

func writeOutcomes(w io.Writer, format outputFormat, outcomes []availability.Outcome) error {
	rows := make([]outcomeRow, len(outcomes))
	for i, o := range outcomes {
		rows[i] = toRow(o)
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatPlain:
		for _, r := range rows {
			// Stable, line-oriented output for piping.
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Domain, r.Verdict); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		fallthrough
	default:
		tw := domain.NewTabWriter(w)
		fmt.Fprintln(tw, "DOMAIN\tVERDICT\tPRICE\tDETAIL")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Domain, r.Verdict, r.Price, r.Detail)
		}
		return tw.Flush()
	}
}

func writeReport(w io.Writer, format outputFormat, rep report.Report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatPlain:
		for _, tld := range sortedTLDs(rep) {
			for _, d := range rep[tld] {
				if _, err := fmt.Fprintln(w, d); err != nil {
					return err
				}
			}
		}
		return nil
	case formatTable:
		fallthrough
	default:
		tw := domain.NewTabWriter(w)
		fmt.Fprintln(tw, "TLD\tAVAILABLE")
		for _, tld := range sortedTLDs(rep) {
			fmt.Fprintf(tw, "%s\t%s\n", tld, strings.Join(rep[tld], " "))
		}
		return tw.Flush()
	}
}

func sortedTLDs(rep report.Report) []string {
	tlds := make([]string, 0, len(rep))
	for tld := range rep {
		tlds = append(tlds, tld)
	}
	sort.Strings(tlds)
	return tlds
}
