package chain

import (
	"context"

	"github.com/matzehuels/wrrc/pkg/observability"
)

// Rank orders configs by simulating a round-robin queue over ticks
// 1..target and returns the resulting priority list. configs is the initial
// queue order and is not modified.
//
// On tick d the queue is scanned front to back, visiting every configuration
// exactly once. A configuration with a repeater firing at d is moved to the
// tail; the rest close ranks behind it. Configurations moved on the same tick
// reach the tail in the order they were visited, so each pass is a stable
// partition into "quiet" followed by "fired".
func Rank(configs []Config, target int) []Config {
	return rank(context.Background(), configs, target, observability.NoopGeneratorHooks{})
}

func rank(ctx context.Context, configs []Config, target int, hooks observability.GeneratorHooks) []Config {
	queue := make([]Config, len(configs))
	copy(queue, configs)

	next := make([]Config, 0, len(queue))
	fired := make([]Config, 0, len(queue))
	for d := 1; d <= target; d++ {
		next, fired = next[:0], fired[:0]
		for _, cfg := range queue {
			if cfg.FiresAt(d) {
				fired = append(fired, cfg)
			} else {
				next = append(next, cfg)
			}
		}
		next = append(next, fired...)
		queue, next = next, queue
		hooks.OnTick(ctx, d, len(fired))
	}
	return queue
}
