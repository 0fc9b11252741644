package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/tpa/tpa"
)

var evalMaxDP int

var evalCmd = &cobra.Command{
	Use:   "eval <operand> [op operand]...",
	Short: "Evaluate a chained add/sub/mul/div/mod expression",
	Long: `eval parses a leading literal operand (integer, fraction,
decimal with optional [recurring] block, or mixed fraction) and then
zero or more (operator, operand) pairs, applying each left to right.
Recognized operators: add, sub, mul, div, mod, plus their aliases
plus, minus, times, divide, modulus.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVar(&evalMaxDP, "max-dp", -1, "cap the decimal expansion (negative uses the configured default)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if len(args)%2 != 1 {
		return fmt.Errorf("eval: expected an odd number of arguments (operand [op operand]...), got %d", len(args))
	}

	acc, err := tpa.NewFromString(args[0])
	if err != nil {
		return err
	}

	for i := 1; i < len(args); i += 2 {
		opName, operandLit := args[i], args[i+1]
		operand, err := tpa.NewFromString(operandLit)
		if err != nil {
			return err
		}
		apply, ok := evalOps[opName]
		if !ok {
			return fmt.Errorf("eval: unknown operator %q", opName)
		}
		if err := apply(acc, operand); err != nil {
			return err
		}
	}

	maxDP := evalMaxDP
	if maxDP < 0 {
		maxDP = cfg.DefaultMaxDP
	}
	opts := []int{}
	if maxDP > 0 {
		opts = []int{maxDP}
	}
	out, err := acc.ToDecimal(opts...)
	if err != nil {
		return err
	}
	if verbose {
		logger.Printf("evaluated %d operand(s)", (len(args)+1)/2)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

var evalOps = map[string]func(a, b *tpa.Tpa) error{
	"add":     (*tpa.Tpa).Add,
	"plus":    (*tpa.Tpa).Add,
	"sub":     (*tpa.Tpa).Subtract,
	"minus":   (*tpa.Tpa).Subtract,
	"mul":     (*tpa.Tpa).Multiply,
	"times":   (*tpa.Tpa).Multiply,
	"div":     (*tpa.Tpa).Divide,
	"divide":  (*tpa.Tpa).Divide,
	"mod":     (*tpa.Tpa).Modulus,
	"modulus": (*tpa.Tpa).Modulus,
}
