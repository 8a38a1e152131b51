package chain

import (
	"slices"
	"strconv"
	"strings"
)

// MaxSelector is the largest selector value a repeater accepts.
const MaxSelector = 3

// Config is one chain configuration: the selector of every repeater in chain
// order. Repeater i delays the signal by Config[i]+1 ticks.
type Config []uint8

// Delay returns the total delay of the chain.
func (c Config) Delay() int {
	total := 0
	for _, s := range c {
		total += int(s) + 1
	}
	return total
}

// Cumulative returns the tick at which each repeater fires, i.e. the running
// sum of repeater delays. The values are strictly increasing.
func (c Config) Cumulative() []int {
	out := make([]int, len(c))
	total := 0
	for i, s := range c {
		total += int(s) + 1
		out[i] = total
	}
	return out
}

// FiresAt reports whether some repeater fires exactly at tick d.
// At most one repeater can, since firing ticks are strictly increasing.
func (c Config) FiresAt(d int) bool {
	total := 0
	for _, s := range c {
		total += int(s) + 1
		if total >= d {
			return total == d
		}
	}
	return false
}

// Display returns the selectors as 1-based repeater settings, the way they
// are dialed in on the repeaters themselves.
func (c Config) Display() []int {
	out := make([]int, len(c))
	for i, s := range c {
		out[i] = int(s) + 1
	}
	return out
}

// Equal reports whether both configurations have the same selectors in the
// same order.
func (c Config) Equal(other Config) bool {
	return slices.Equal(c, other)
}

// Clone returns a copy of c that shares no memory with it.
func (c Config) Clone() Config {
	return slices.Clone(c)
}

// String formats the configuration as "| 1 | 4 |" using 1-based settings.
func (c Config) String() string {
	var b strings.Builder
	b.WriteString("|")
	for _, s := range c {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(int(s) + 1))
		b.WriteString(" |")
	}
	return b.String()
}
