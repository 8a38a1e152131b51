package chain

import (
	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

// MaxElements is the largest repeater count [Enumerate] accepts.
// 4^12 is roughly 16.7 million candidates.
const MaxElements = 12

// TargetDelay returns the total delay addresses are generated for:
// n + ⌊3n/2⌋. It approximates the delay reached by the most configurations
// (see [Mode] for the exact value).
func TargetDelay(n int) int {
	return n + n*3/2
}

// CandidateCount returns the number of configurations of n repeaters, 4^n.
func CandidateCount(n int) uint64 {
	return 1 << (2 * uint(n))
}

// ValidateElementCount checks n against the supported range [1, MaxElements].
func ValidateElementCount(n int) error {
	if n <= 0 {
		return apperr.New(apperr.ErrCodeInvalidElementCount, "repeater count must be positive, got %d", n)
	}
	if n > MaxElements {
		return apperr.New(apperr.ErrCodeElementCountTooLarge, "repeater count %d exceeds the maximum of %d", n, MaxElements)
	}
	return nil
}

// Enumerate returns every configuration of n repeaters whose total delay
// equals TargetDelay(n), together with that delay.
//
// Candidate i encodes repeater r's selector in bits 2r and 2r+1, so the first
// repeater varies fastest. Results are returned in candidate order.
func Enumerate(n int) ([]Config, int, error) {
	if err := ValidateElementCount(n); err != nil {
		return nil, 0, err
	}
	target := TargetDelay(n)
	total := CandidateCount(n)

	var out []Config
	for i := uint64(0); i < total; i++ {
		if decodedDelay(i, n) != target {
			continue
		}
		cfg := make(Config, n)
		for r := range cfg {
			cfg[r] = uint8(i>>(2*uint(r))) & MaxSelector
		}
		out = append(out, cfg)
	}
	return out, target, nil
}

func decodedDelay(i uint64, n int) int {
	delay := n
	for r := 0; r < n; r++ {
		delay += int(i>>(2*uint(r))) & MaxSelector
	}
	return delay
}
