package cli

import (
	"testing"

	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 12 ", 12, false},
		{"-3", -3, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"3.5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !apperr.Is(err, apperr.ErrCodeInvalidInput) {
			t.Errorf("parseCount(%q) returned wrong code: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	if _, err := parseAddress("x"); err == nil || apperr.UserMessage(err) != `address must be an integer, got "x"` {
		t.Errorf("parseAddress(x) error = %v", err)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "address", "addresses"); got != "1 address" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(12, "address", "addresses"); got != "12 addresses" {
		t.Errorf("pluralize(12) = %q", got)
	}
}
