package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/LeJamon/tpa/internal/tpaconfig"
)

var (
	// Global flags
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	cfg    *tpaconfig.Config
	logger *log.Logger

	// isInteractive reports whether stdout is a terminal. No subcommand
	// reads it, and none prints REPL-style prompts.
	isInteractive = isatty.IsTerminal(os.Stdout.Fd())
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tpa",
	Short: "tpa - arbitrary-precision rational arithmetic",
	Long: `tpa is a command-line front end over the tpa Go module: exact
integer and fraction arithmetic with grammar-based decimal parsing and
a best-effort fraction simplifier. It is not a general-purpose
calculator; expressions are a flat chain of add/sub/mul/div/mod over
literal operands, evaluated left to right.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "has no effect: no command emits debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-result output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd reports both the toolchain and the engine parameters the
// running binary was built with, since the digit radix is fixed at
// compile time rather than read from cfg (see tpaconfig's package doc).
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and engine parameters",
	Long: `version prints the tpa release, the Go toolchain it was built
with, and the bigint engine's digit radix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tpa version %s\n", rootCmd.Version)
		fmt.Fprintf(out, "Go version: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "engine radix: %d\n", bigint.B)
		if path := cfg.GetConfigPath(); path != "" {
			fmt.Fprintf(out, "config file: %s\n", path)
		}
		return nil
	},
}

// initConfig loads internal/tpaconfig defaults, optionally layered
// with configFile, and sets up the package logger.
func initConfig() {
	loaded, err := tpaconfig.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	flags := log.LstdFlags
	var sink io.Writer = os.Stderr
	if quiet {
		flags = 0
		sink = io.Discard
	}
	logger = log.New(sink, "tpa: ", flags)
}
