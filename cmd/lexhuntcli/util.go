package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lexhunt/lexhuntcli/internal/domain"
)

func readDomainsFromArgsAndStdin(args []string, stdin *os.File) ([]string, error) {
	var out []string

	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		out = append(out, a)
	}

	if term.IsTerminal(int(stdin.Fd())) {
		// Nothing piped in.
		return out, nil
	}

	stdinDomains, err := domain.ReadLines(stdin)
	if err != nil {
		return nil, err
	}
	out = append(out, stdinDomains...)
	return out, nil
}

// parseTLDList normalizes a comma-separated TLD list, preserving first
// occurrence order and dropping duplicates.
func parseTLDList(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tld, err := domain.NormalizeTLD(p)
		if err != nil {
			return nil, fmt.Errorf("invalid TLD %q: %w", strings.TrimSpace(p), err)
		}
		if _, ok := seen[tld]; ok {
			continue
		}
		seen[tld] = struct{}{}
		out = append(out, tld)
	}
	return out, nil
}
