package registrar

import "context"

// Client checks a batch of domains against one registrar in a single
// provider call. Implementations must respect their provider's per-call
// domain cap and return one DomainCheck per answered domain; callers
// handle domains the provider left unanswered.
type Client interface {
	Name() string

	// BatchCap is the provider's maximum number of domains per call.
	BatchCap() int

	CheckDomains(ctx context.Context, domains []string) ([]DomainCheck, error)
}

type DomainCheck struct {
	Domain     string
	Available  bool
	Definitive bool // provider asserts the verdict rather than guessing

	// Purchase info when the provider returns it.
	PriceMicros int64 // price in millionths of a currency unit
	Currency    string
	PeriodYears int
}
