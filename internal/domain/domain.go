package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/net/idna"
)

// Normalize turns user input into an ASCII domain name suitable for an
// availability query. It lowercases, strips a trailing dot, and runs the
// result through IDNA lookup rules. It returns an error if the remaining
// value is not a registrable domain name.
func Normalize(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty domain")
	}

	s = strings.TrimSuffix(s, ".")
	s = strings.ToLower(s)

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}

	// Single-label names are not registrable domains.
	if !strings.Contains(ascii, ".") {
		return "", fmt.Errorf("domain must contain a dot: %q", input)
	}

	if !isValidDomainASCII(ascii) {
		return "", fmt.Errorf("invalid domain: %q", input)
	}

	return ascii, nil
}

// NormalizeTLD canonicalizes a TLD token: lowercase, leading dot
// guaranteed, IDNA-valid single label. Accepts "com", ".com", " .IO ".
func NormalizeTLD(input string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return "", fmt.Errorf("empty tld")
	}

	ascii, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}
	if strings.Contains(ascii, ".") {
		return "", fmt.Errorf("tld must be a single label: %q", input)
	}
	if !isValidLabel(ascii) {
		return "", fmt.Errorf("invalid tld: %q", input)
	}

	return "." + ascii, nil
}

// ReadLines collects non-empty trimmed lines from r.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	// Domains and words are short; the default scanner buffer is enough.
	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func isValidDomainASCII(s string) bool {
	// Small, pragmatic validation for registrable names.
	if len(s) < 1 || len(s) > 253 {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isValidLabel(label) {
			return false
		}
	}
	return true
}

func isValidLabel(label string) bool {
	if len(label) < 1 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return false
	}
	return true
}
