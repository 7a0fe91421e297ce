package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/spf13/cobra"
)

var (
	showPostfix bool
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Calc evaluates infix arithmetic expressions with + - * /, brackets and
unary minus. Both '.' and ',' work as the decimal separator. Results are
rounded to two decimal places.

With no arguments every line of stdin is evaluated, otherwise each argument
is evaluated as its own expression.

Examples:
  calc "1 + 2 * 3"
  echo "-10 + (8 * 2.5) - (3 / 1,5)" | calc --postfix`,
	RunE: run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showPostfix, "postfix", false, "Also print the reverse polish form of each expression")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log the postfix form and errors to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	opts := lib.DriverOptions{
		ShowPostfix: showPostfix,
		Color:       !noColor && !color.NoColor,
	}
	if verbose {
		opts.Logger = log.New(os.Stderr, "calc: ", 0)
	}

	if len(args) > 0 {
		return lib.RunExpressions(args, cmd.OutOrStdout(), opts)
	}
	return lib.RunLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}
