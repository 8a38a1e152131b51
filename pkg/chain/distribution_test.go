package chain

import (
	"slices"
	"testing"

	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

func TestDistribution(t *testing.T) {
	got, err := Distribution(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{0, 0, 0, 1, 3, 6, 10, 12, 12, 10, 6, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Distribution(3) = %v, want %v", got, want)
	}
}

func TestDistributionMatchesEnumeration(t *testing.T) {
	for n := 1; n <= 6; n++ {
		dist, err := Distribution(n)
		if err != nil {
			t.Fatal(err)
		}
		configs, target, err := Enumerate(n)
		if err != nil {
			t.Fatal(err)
		}
		if dist[target] != uint64(len(configs)) {
			t.Errorf("n=%d: Distribution[%d] = %d, Enumerate found %d", n, target, dist[target], len(configs))
		}

		var total uint64
		for _, c := range dist {
			total += c
		}
		if total != CandidateCount(n) {
			t.Errorf("n=%d: distribution sums to %d, want %d", n, total, CandidateCount(n))
		}
	}
}

func TestMode(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 1}, // uniform, ties resolve low
		{2, 5},
		{3, 7},
		{4, 10},
		{5, 12},
		{6, 15},
	}
	for _, tt := range tests {
		got, err := Mode(tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Mode(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestDistributionRejectsInvalidCounts(t *testing.T) {
	if _, err := Distribution(0); !apperr.Is(err, apperr.ErrCodeInvalidElementCount) {
		t.Errorf("Distribution(0) error = %v", err)
	}
	if _, err := Mode(MaxElements + 1); !apperr.Is(err, apperr.ErrCodeElementCountTooLarge) {
		t.Errorf("Mode(MaxElements+1) error = %v", err)
	}
}
