package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LeJamon/tpa/internal/rational"
	"github.com/LeJamon/tpa/tpa"
)

var simplifyBudgetMS int64

var simplifyCmd = &cobra.Command{
	Use:   "simplify <fraction>",
	Short: "Reduce a fraction to lowest terms within a time budget",
	Long: `simplify parses its argument per the R string grammar, then
runs the prime-trial reduction with the given millisecond budget
(0 = unbounded, the default is drawn from tpaconfig). It prints
to_fraction() of the result; with --verbose it also logs whether the
walk ran to exhaustion and the elapsed time.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimplify,
}

func init() {
	simplifyCmd.Flags().Int64Var(&simplifyBudgetMS, "budget-ms", -1, "millisecond budget for the reduction (defaults to the configured value)")
	rootCmd.AddCommand(simplifyCmd)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	value, err := tpa.NewFromString(args[0])
	if err != nil {
		return err
	}

	budget := cfg.DefaultSimplifyBudgetMS
	if simplifyBudgetMS >= 0 {
		budget = simplifyBudgetMS
	}

	start := time.Now()
	exhaustive, err := value.Simplify(budget, wallClock{})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(cmd.OutOrStdout(), value.ToFraction())
	if verbose {
		logger.Printf("exhaustive=%v elapsed=%s (budget %s)",
			exhaustive, humanize.RelTime(start, start.Add(elapsed), "", ""), humanize.Comma(budget)+"ms")
	}
	return nil
}

// wallClock adapts time.Now to rational.Clock for CLI use; the library
// itself never assumes a wall clock, relying entirely on a
// caller-supplied one.
type wallClock struct{}

func (wallClock) ElapsedMillis() int64 {
	return time.Now().UnixMilli()
}

var _ rational.Clock = wallClock{}
