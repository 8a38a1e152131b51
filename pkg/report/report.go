package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wrrc/pkg/chain"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the canonical names accepted by [Write].
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// minRankWidth is the narrowest zero-padded rank column.
const minRankWidth = 3

// ParseFormat returns the canonical name of format. Names are case
// insensitive, "yml" is an alias for yaml and the empty string means table.
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "unknown format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// Write renders res to w in the named format.
func Write(w io.Writer, format string, res *chain.Result) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return WriteTable(w, res)
	}
}

// WriteTable writes one line per address in the classic listing format.
func WriteTable(w io.Writer, res *chain.Result) error {
	width := RankWidth(res.Count())
	for i, cfg := range res.Ranked {
		if _, err := fmt.Fprintf(w, "%0*d %s\n", width, i+1, cfg); err != nil {
			return err
		}
	}
	return nil
}

// RankWidth returns the zero-padded width of the rank column for count
// addresses.
func RankWidth(count int) int {
	return max(minRankWidth, len(strconv.Itoa(count)))
}

// FormatRank zero-pads rank to the width used for count addresses.
func FormatRank(rank, count int) string {
	return fmt.Sprintf("%0*d", RankWidth(count), rank)
}

// Summary returns the one-line description printed after a listing.
func Summary(res *chain.Result) string {
	return fmt.Sprintf("At delay %d with %d repeaters are %d combinations possible", res.TargetDelay, res.Elements, res.Count())
}

// Address formats a single configuration as an address code.
func Address(cfg chain.Config) string {
	return "Address-Code: " + cfg.String()
}

type document struct {
	Elements    int     `json:"elements" yaml:"elements"`
	TargetDelay int     `json:"target_delay" yaml:"target_delay"`
	Count       int     `json:"count" yaml:"count"`
	Ranking     []entry `json:"ranking" yaml:"ranking"`
}

type entry struct {
	Rank      int   `json:"rank" yaml:"rank"`
	Selectors []int `json:"selectors" yaml:"selectors,flow"`
	Delays    []int `json:"delays" yaml:"delays,flow"`
}

func newDocument(res *chain.Result) document {
	doc := document{
		Elements:    res.Elements,
		TargetDelay: res.TargetDelay,
		Count:       res.Count(),
		Ranking:     make([]entry, len(res.Ranked)),
	}
	for i, cfg := range res.Ranked {
		doc.Ranking[i] = entry{
			Rank:      i + 1,
			Selectors: cfg.Display(),
			Delays:    cfg.Cumulative(),
		}
	}
	return doc
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res *chain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(res))
}

// WriteYAML writes res as YAML.
func WriteYAML(w io.Writer, res *chain.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(res)); err != nil {
		return err
	}
	return enc.Close()
}
