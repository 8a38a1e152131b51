// Package chain generates priority lists for wireless repeater chains.
//
// A chain is a row of N repeaters. Each repeater has a 2-bit selector
// (0..3) and delays the signal by selector+1 ticks, so a chain's total delay
// lies between N and 4N. Every chain configuration whose total delay equals
// the target delay N + ⌊3N/2⌋ is an address: receivers listening for a fixed
// delay can tell such chains apart only by when each repeater fires.
//
// # Generation
//
// [Generate] runs two phases:
//
//  1. [Enumerate] walks all 4^N candidates in index order (the first repeater
//     varies fastest) and keeps those with the target delay.
//  2. [Rank] simulates a round-robin queue. For every tick d from 1 to the
//     target delay it scans the queue once and moves each configuration
//     with a repeater firing exactly at d to the tail.
//
// The queue order after the last tick is the priority list. Ranks are
// 1-based and are looked up with [Lookup] or [Result.Lookup].
//
// # Example
//
//	res, err := chain.Generate(3)
//	if err != nil {
//	    return err
//	}
//	cfg, err := res.Lookup(1)
//
// # Limits
//
// The candidate space grows as 4^N. [Enumerate] refuses counts above
// [MaxElements]; counts below 1 fail with INVALID_ELEMENT_COUNT.
package chain
