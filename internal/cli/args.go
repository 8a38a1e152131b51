package cli

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

// parseCount parses a repeater count argument.
func parseCount(s string) (int, error) {
	return parseInt(s, "repeater count")
}

// parseAddress parses a 1-based address argument.
func parseAddress(s string) (int, error) {
	return parseInt(s, "address")
}

func parseInt(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be an integer, got %q", what, s)
	}
	return n, nil
}
