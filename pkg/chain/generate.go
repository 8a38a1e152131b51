package chain

import (
	"context"
	"time"

	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/observability"
)

// Result is a generated priority list.
type Result struct {
	Elements    int      // Number of repeaters in the chain
	TargetDelay int      // Total delay shared by every ranked configuration
	Ranked      []Config // Configurations in priority order; index 0 is rank 1
}

// Count returns the number of addresses in the priority list.
func (r *Result) Count() int {
	return len(r.Ranked)
}

// Lookup returns a copy of the configuration at the 1-based rank.
func (r *Result) Lookup(rank int) (Config, error) {
	return Lookup(r.Ranked, rank)
}

// Option configures [Generate].
type Option func(*generator)

type generator struct {
	ctx   context.Context
	hooks observability.GeneratorHooks
}

// WithHooks overrides the globally registered generator hooks.
func WithHooks(h observability.GeneratorHooks) Option {
	return func(g *generator) {
		if h != nil {
			g.hooks = h
		}
	}
}

// WithContext sets the context passed to hooks. Generation itself is not
// cancellable.
func WithContext(ctx context.Context) Option {
	return func(g *generator) {
		if ctx != nil {
			g.ctx = ctx
		}
	}
}

// Generate builds the priority list for n repeaters. The result depends only
// on n. n must be in [1, MaxElements]: n <= 0 fails with
// INVALID_ELEMENT_COUNT and n > MaxElements fails with
// ELEMENT_COUNT_TOO_LARGE, since all 4^n candidates are enumerated.
func Generate(n int, opts ...Option) (*Result, error) {
	g := &generator{ctx: context.Background(), hooks: observability.Generator()}
	for _, opt := range opts {
		opt(g)
	}

	start := time.Now()
	configs, target, err := Enumerate(n)
	if err != nil {
		return nil, err
	}
	g.hooks.OnEnumerateComplete(g.ctx, n, CandidateCount(n), len(configs), time.Since(start))

	start = time.Now()
	ranked := rank(g.ctx, configs, target, g.hooks)
	g.hooks.OnRankComplete(g.ctx, n, len(ranked), time.Since(start))

	return &Result{Elements: n, TargetDelay: target, Ranked: ranked}, nil
}

// Lookup returns a copy of the configuration at the 1-based rank of ranked.
// Ranks outside [1, len(ranked)] fail with RANK_OUT_OF_RANGE.
func Lookup(ranked []Config, rank int) (Config, error) {
	if rank < 1 || rank > len(ranked) {
		return nil, apperr.New(apperr.ErrCodeRankOutOfRange, "address %d does not exist, valid addresses are 1..%d", rank, len(ranked))
	}
	return ranked[rank-1].Clone(), nil
}
