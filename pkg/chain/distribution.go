package chain

// Distribution returns how many configurations of n repeaters reach each
// total delay. Index d holds the count for delay d, so the slice has 4n+1
// entries and indices below n are zero.
func Distribution(n int) ([]uint64, error) {
	if err := ValidateElementCount(n); err != nil {
		return nil, err
	}
	counts := []uint64{1}
	for r := 0; r < n; r++ {
		next := make([]uint64, len(counts)+MaxSelector+1)
		for d, c := range counts {
			if c == 0 {
				continue
			}
			for s := 0; s <= MaxSelector; s++ {
				next[d+s+1] += c
			}
		}
		counts = next
	}
	return counts, nil
}

// Mode returns the total delay reached by the most configurations of n
// repeaters. Ties resolve to the smallest delay.
func Mode(n int) (int, error) {
	counts, err := Distribution(n)
	if err != nil {
		return 0, err
	}
	best := 0
	for d, c := range counts {
		if c > counts[best] {
			best = d
		}
	}
	return best, nil
}
