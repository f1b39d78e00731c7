package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/evaluator/internal/console"
)

var (
	inname  string
	verb    string
	echo    bool
	verbose bool
	nocolor bool
)

var rootCmd = &cobra.Command{
	Use:   "evaluator [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Evaluator computes arithmetic expressions with + - * / ^ and parentheses.

Each argument is evaluated as an expression. With no arguments, or with --in,
each line of the input is evaluated. Reading from a terminal prompts for each
line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&inname, "in", "", "input file, or - for stdin (default stdin if no args given)")
	rootCmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting string")
	rootCmd.Flags().BoolVar(&echo, "echo", false, "print postfix forms")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "explain invalid expressions")
	rootCmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := console.Options{
		Format:  verb,
		Echo:    echo,
		Verbose: verbose,
		Color:   !nocolor,
	}
	if verbose {
		opts.Log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	in, interactive, err := infile(inname, len(args) == 0)
	if err != nil {
		return err
	}
	if c, ok := in.(io.Closer); ok && in != os.Stdin {
		defer c.Close()
	}
	opts.Interactive = interactive

	c := console.New(cmd.OutOrStdout(), opts)
	for _, arg := range args {
		if err := c.Eval(arg); err != nil {
			return err
		}
	}
	if in == nil {
		return nil
	}
	return c.Run(in)
}

// infile opens the input named by the --in flag. std indicates that stdin is
// the default input. The result is interactive when it is a terminal.
func infile(inname string, std bool) (io.Reader, bool, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	case inname == "-", std:
		return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
	}
	return nil, false, nil
}
