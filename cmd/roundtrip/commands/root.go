// Package commands wires the roundtrip CLI: a one-shot solve command and an
// interactive session over an in-memory city graph.
//
// Exit codes:
//
//	0 — success.
//	1 — input/validation failure (bad flags, malformed edge, invalid insertion).
//	2 — solve-domain failure (empty graph, unknown start city, incomplete graph).
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/roundtrip/tour"
)

// Output styles shared by the subcommands.
var (
	routeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	costStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var rootCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Exact closed-tour planning over named cities",
	Long: `roundtrip computes the exact minimum-distance closed tour
(Travelling Salesman solution) over a small graph of named cities.

Build the graph from --edge flags or a YAML file and solve in one shot,
or open an interactive session and mutate the graph command by command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Run: nil (forces help output).
	Run: nil,
}

func init() {
	// Accept underscore-spelled flags (--edge_list style typos) by
	// normalizing them to dashes.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// Execute runs the CLI and terminates the process with the documented exit
// code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit-code contract: solver domain
// failures exit 2, everything else (flag parsing, malformed input, invalid
// edge insertions) exits 1.
func exitCode(err error) int {
	switch {
	case errors.Is(err, tour.ErrEmptyGraph),
		errors.Is(err, tour.ErrStartNotFound),
		errors.Is(err, tour.ErrIncompleteGraph):
		return 2
	default:
		return 1
	}
}

// renderResult formats a solved tour for human consumption.
func renderResult(res tour.Result) string {
	route := res.Route[0]
	for _, city := range res.Route[1:] {
		route += " -> " + city
	}

	return routeStyle.Render("Route: "+route) + "\n" +
		costStyle.Render(fmt.Sprintf("Cost:  %g", res.Cost))
}
