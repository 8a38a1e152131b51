package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wrrc/pkg/chain"
)

// distCommand creates the dist command, which shows how configurations spread
// over total delays.
func (c *CLI) distCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dist <repeaters>",
		Short: "Show the number of configurations per total delay",
		Long: `Show the number of configurations per total delay.

The target delay used by gen is n + floor(3n/2), an approximation of the
delay reached by the most configurations. dist marks both the target and the
exact mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			if err := c.checkCount(n); err != nil {
				return err
			}

			counts, err := chain.Distribution(n)
			if err != nil {
				return err
			}
			mode, err := chain.Mode(n)
			if err != nil {
				return err
			}
			target := chain.TargetDelay(n)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("Delay distribution for %d repeaters", n)))
			fmt.Fprintln(out, renderDistribution(counts, target, mode))
			printKeyValue(out, "Target delay", fmt.Sprintf("%d (%d configurations)", target, counts[target]))
			printKeyValue(out, "Mode", fmt.Sprintf("%d (%d configurations)", mode, counts[mode]))
			if target != mode {
				printInfo(out, "%s", StyleWarning.Render("the target delay differs from the mode for this count"))
			}
			return nil
		},
	}
}
