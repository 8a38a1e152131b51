package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/report"
)

// addrCommand creates the addr command (alias wrrc), which resolves one
// address to its repeater settings.
func (c *CLI) addrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addr <repeaters> <address>",
		Aliases: []string{"wrrc"},
		Short:   "Print the repeater configuration of an address",
		Example: `  # Settings of address 5 in a 3-repeater chain
  wrrc addr 3 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			addr, err := parseAddress(args[1])
			if err != nil {
				return err
			}

			res, err := c.generate(cmd.Context(), n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg, err := res.Lookup(addr)
			if err != nil {
				printDetail(out, "%s", report.Summary(res))
				return apperr.Wrap(apperr.ErrCodeRankOutOfRange, err, "address %d does not exist with only %d repeaters", addr, n)
			}

			fmt.Fprintln(out, report.Address(cfg))
			printKeyValue(out, "Fires at", joinInts(cfg.Cumulative(), ", "))
			return nil
		},
	}
	return cmd
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
