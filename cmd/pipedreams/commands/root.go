// Package commands wires the pipedreams library into a cobra CLI.
package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipedreams/dream"
	"github.com/katalvlaran/pipedreams/perm"
	"github.com/katalvlaran/pipedreams/schubert"
)

var (
	version string
	commit  string
	date    string
)

var delim string

// crossMark colors crossing tiles when stdout is a terminal; fatih/color
// degrades to plain text otherwise.
var crossMark = color.New(color.FgHiYellow, color.Bold)

// rootCmd parses one permutation, enumerates its reduced pipe dreams and
// prints the Schubert polynomial.
var rootCmd = &cobra.Command{
	Use:   "pipedreams <permutation>",
	Short: "Enumerate reduced pipe dreams and their Schubert polynomial",
	Long: `pipedreams parses a zero-indexed permutation (e.g. "0,3,2,1"),
enumerates its reduced pipe dreams via the mitosis recursion, and prints
the associated Schubert polynomial.

Each dream prints as a grid of "." (elbow) and "+" (cross) tiles.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	p, err := perm.Parse(args[0], delim)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Permutation: %s\n", p)

	rd := dream.ReducedDreamsFor(p)
	fmt.Fprintln(out, "Reduced dreams:")
	for _, d := range rd.Dreams() {
		fmt.Fprintln(out, renderDream(d))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, schubert.FromDreams(rd))

	return nil
}

func renderDream(d dream.Dream) string {
	var sb strings.Builder
	for i := 0; i < d.Dim(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < d.Dim(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if d.At(i, j) == dream.Cross {
				sb.WriteString(crossMark.Sprint("+"))
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// Execute runs the root command. Errors are reported once by main with
// color formatting, so cobra's own printing is silenced.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.Flags().StringVarP(&delim, "delim", "d", perm.DefaultDelim,
		"token delimiter for the permutation argument")
}
