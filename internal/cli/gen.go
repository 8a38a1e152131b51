package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wrrc/pkg/chain"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/report"
)

// genCommand creates the gen command, which prints a full priority list.
func (c *CLI) genCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen <repeaters>",
		Short: "Generate the priority list (with address numbers) for a repeater count",
		Example: `  # Classic listing for 3 repeaters
  wrrc gen 3

  # Export as JSON
  wrrc gen 5 --format json -o chain5.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = c.Config.Format
			}

			res, err := c.generate(cmd.Context(), n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				var buf bytes.Buffer
				if err := report.Write(&buf, format, res); err != nil {
					return err
				}
				if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
					return apperr.Wrap(apperr.ErrCodeInternal, err, "write output: %v", err)
				}
				printSuccess(out, "Priority list written")
				printFile(out, output)
				printDetail(out, "%s", report.Summary(res))
				return nil
			}

			return c.writeResult(out, format, res)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// writeResult prints res to w. Tables on a terminal are styled when enabled
// in the config; everything else uses the plain report format.
func (c *CLI) writeResult(w io.Writer, format string, res *chain.Result) error {
	if format != report.FormatTable {
		return report.Write(w, format, res)
	}

	if c.Config.StyledOutput() && isTerminal(w) {
		fmt.Fprintln(w, renderRanking(res))
	} else if err := report.WriteTable(w, res); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Summary(res))
	return nil
}
