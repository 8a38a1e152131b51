package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wrrc/pkg/chain"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
)

func generate(t *testing.T, n int) *chain.Result {
	t.Helper()
	res, err := chain.Generate(n)
	if err != nil {
		t.Fatalf("Generate(%d): %v", n, err)
	}
	return res
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, generate(t, 2)); err != nil {
		t.Fatal(err)
	}
	want := "001 | 1 | 4 |\n002 | 2 | 3 |\n003 | 3 | 2 |\n004 | 4 | 1 |\n"
	if buf.String() != want {
		t.Errorf("WriteTable() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRankWidth(t *testing.T) {
	tests := []struct{ count, want int }{
		{0, 3},
		{4, 3},
		{999, 3},
		{1000, 4},
		{155, 3},
		{13228, 5},
	}
	for _, tt := range tests {
		if got := RankWidth(tt.count); got != tt.want {
			t.Errorf("RankWidth(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
	if got := FormatRank(7, 1200); got != "0007" {
		t.Errorf("FormatRank(7, 1200) = %q", got)
	}
}

func TestSummaryAndAddress(t *testing.T) {
	res := generate(t, 3)
	if got := Summary(res); got != "At delay 7 with 3 repeaters are 12 combinations possible" {
		t.Errorf("Summary() = %q", got)
	}
	if got := Address(res.Ranked[0]); got != "Address-Code: | 1 | 2 | 4 |" {
		t.Errorf("Address() = %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, generate(t, 2)); err != nil {
		t.Fatal(err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Elements != 2 || doc.TargetDelay != 5 || doc.Count != 4 {
		t.Errorf("header = %+v", doc)
	}
	first := doc.Ranking[0]
	if first.Rank != 1 || first.Selectors[0] != 1 || first.Selectors[1] != 4 {
		t.Errorf("first entry = %+v", first)
	}
	if first.Delays[0] != 1 || first.Delays[1] != 5 {
		t.Errorf("first delays = %v", first.Delays)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "YAML", generate(t, 3)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "target_delay: 7") {
		t.Errorf("YAML missing target delay:\n%s", buf.String())
	}

	var doc document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(doc.Ranking) != 12 {
		t.Errorf("got %d entries, want 12", len(doc.Ranking))
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "svg", generate(t, 1))
	if !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("Write(svg) error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", FormatTable},
		{"Table", FormatTable},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{"YAML", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("svg"); !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(svg) error = %v, want INVALID_FORMAT", err)
	}
}
