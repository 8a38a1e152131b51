// Package report formats generated priority lists.
//
// The table format is the classic listing: one line per address, the rank
// zero-padded to at least three digits, followed by the 1-based repeater
// settings:
//
//	001 | 1 | 4 |
//	002 | 2 | 3 |
//
// JSON and YAML carry the same data for scripts, including each
// configuration's firing ticks.
package report
