package hunt

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lexhunt/lexhuntcli/internal/candidate"
	"github.com/lexhunt/lexhuntcli/internal/registrar"
	"github.com/lexhunt/lexhuntcli/internal/report"
)

// scriptedRegistrar answers each call in sequence: either a set of
// available domains or an error.
type scriptedRegistrar struct {
	cap       int
	available []map[string]bool // one entry per expected call; nil entry = call fails
	calls     [][]string
}

func (s *scriptedRegistrar) Name() string  { return "scripted" }
func (s *scriptedRegistrar) BatchCap() int { return s.cap }

func (s *scriptedRegistrar) CheckDomains(ctx context.Context, domains []string) ([]registrar.DomainCheck, error) {
	call := len(s.calls)
	s.calls = append(s.calls, domains)
	if call >= len(s.available) || s.available[call] == nil {
		return nil, errors.New("provider unavailable")
	}
	out := make([]registrar.DomainCheck, 0, len(domains))
	for _, d := range domains {
		out = append(out, registrar.DomainCheck{Domain: d, Available: s.available[call][d], Definitive: true})
	}
	return out, nil
}

type memStore struct {
	saves []report.Report
}

func (m *memStore) Save(r report.Report) error {
	m.saves = append(m.saves, r)
	return nil
}

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%03d", i)
	}
	return out
}

func TestRun_SingleBatch(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{
		{"cat.com": true, "dog.com": false},
	}}
	r, err := New(Options{
		Words:     []string{"cat", "dog"},
		TLDs:      []string{".com"},
		BatchSize: 70,
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, sum.Candidates)
	require.Equal(t, 1, sum.Batches)
	require.Equal(t, 0, sum.FailedBatches)
	require.False(t, sum.Degraded())
	require.Equal(t, 1, sum.Found)
	require.Equal(t, report.Report{".com": {"cat.com"}}, sum.Report)

	require.Len(t, reg.calls, 1)
	require.Equal(t, []string{"cat.com", "dog.com"}, reg.calls[0])
}

func TestRun_FirstBatchFails_RunDegradesButFinishes(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{
		nil, // first batch call fails
		{"w070.com": true},
	}}
	r, err := New(Options{
		Words:     words(140),
		TLDs:      []string{".com"},
		BatchSize: 70,
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, sum.Batches)
	require.Equal(t, 1, sum.FailedBatches)
	require.True(t, sum.Degraded())

	// Batch 2's find survives batch 1's failure.
	require.Equal(t, report.Report{".com": {"w070.com"}}, sum.Report)
	require.Len(t, reg.calls, 2)
}

func TestRun_TLDMajorBatching(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{
		{"cat.com": true}, {}, {"dog.io": true}, {},
	}}
	r, err := New(Options{
		Words:     []string{"cat", "dog"},
		TLDs:      []string{".com", ".io"},
		BatchSize: 1,
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 4, sum.Batches)
	require.Equal(t, report.Report{".com": {"cat.com"}, ".io": {"dog.io"}}, sum.Report)
	require.Equal(t, [][]string{{"cat.com"}, {"dog.com"}, {"cat.io"}, {"dog.io"}}, reg.calls)
}

func TestRun_SavesFinalAndIncrementalSnapshots(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{
		{"cat.com": true}, {"dog.com": true},
	}}
	store := &memStore{}
	r, err := New(Options{
		Words:         []string{"cat", "dog"},
		TLDs:          []string{".com"},
		BatchSize:     1,
		Registrar:     reg,
		Logger:        zerolog.Nop(),
		Store:         store,
		SaveEachBatch: true,
	})
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)

	// Two incremental saves plus the final one.
	require.Len(t, store.saves, 3)
	require.Equal(t, report.Report{".com": {"cat.com"}}, store.saves[0])
	require.Equal(t, report.Report{".com": {"cat.com", "dog.com"}}, store.saves[2])
}

func TestRun_DelayBetweenBatches(t *testing.T) {
	t.Parallel()

	const delay = 25 * time.Millisecond
	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{{}, {}, {}}}
	r, err := New(Options{
		Words:     []string{"a", "b", "c"},
		TLDs:      []string{".com"},
		BatchSize: 1,
		Delay:     delay,
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	// 3 batches, delay skipped before the first: at least 2 gaps.
	require.GreaterOrEqual(t, time.Since(start), 2*delay)
}

func TestRun_CancellationKeepsPartialReport(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70, available: []map[string]bool{
		{"cat.com": true}, {"dog.com": true},
	}}
	ctx, cancel := context.WithCancel(context.Background())

	r, err := New(Options{
		Words:     []string{"cat", "dog"},
		TLDs:      []string{".com"},
		BatchSize: 1,
		Delay:     time.Hour,
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	sum, err := r.Run(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, report.Report{".com": {"cat.com"}}, sum.Report)
}

func TestNew_ConfigErrors(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 70}
	base := Options{
		Words:     []string{"cat"},
		TLDs:      []string{".com"},
		Registrar: reg,
		Logger:    zerolog.Nop(),
	}

	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no registrar", func(o *Options) { o.Registrar = nil }},
		{"no words", func(o *Options) { o.Words = nil }},
		{"no tlds", func(o *Options) { o.TLDs = nil }},
		{"negative batch size", func(o *Options) { o.BatchSize = -1 }},
		{"batch size above cap", func(o *Options) { o.BatchSize = 71 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			tc.mutate(&opts)
			_, err := New(opts)
			var ce *candidate.ConfigError
			require.ErrorAs(t, err, &ce)
		})
	}
}

func TestNew_BatchSizeDefaultsToCap(t *testing.T) {
	t.Parallel()

	reg := &scriptedRegistrar{cap: 2, available: []map[string]bool{{}, {}}}
	r, err := New(Options{
		Words:     []string{"a", "b", "c"},
		TLDs:      []string{".com"},
		Registrar: reg,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sum.Batches)
}
