package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtrip/citygraph"
	"github.com/katalvlaran/roundtrip/tour"
)

const sessionHelp = `Commands:
  add-edge <from> <to> <weight>   insert or overwrite an undirected edge
  reset                           clear the graph
  nodes                           list cities (sorted)
  neighbors <city>                list a city's neighbors and distances
  solve <start> [algo]            compute the optimal tour (algo: exhaustive | heldkarp)
  help                            show this help
  quit                            leave the session`

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive graph-building and solving session",
	Long: `Opens a line-oriented session against an in-memory city graph.
The graph lives only for the duration of the session; nothing is persisted.

` + sessionHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		runSession(cmd.InOrStdin(), cmd.OutOrStdout())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// runSession drives the command loop. Per-command failures are reported and
// the loop continues; only EOF or "quit" ends the session. Session errors
// never affect the process exit code: an interactive typo is not a CLI
// invocation failure.
func runSession(in io.Reader, out io.Writer) {
	g := citygraph.NewGraph()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, sessionHelp)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if msg := runSessionCommand(g, fields); msg != "" {
			fmt.Fprintln(out, msg)
		}
		fmt.Fprint(out, "> ")
	}
}

// runSessionCommand executes one parsed command line against the live graph
// and returns the text to print.
func runSessionCommand(g *citygraph.Graph, fields []string) string {
	switch fields[0] {
	case "add-edge":
		if len(fields) != 4 {
			return errStyle.Render("usage: add-edge <from> <to> <weight>")
		}
		w, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return errStyle.Render(fmt.Sprintf("bad weight %q: %v", fields[3], err))
		}
		if err = g.AddEdge(fields[1], fields[2], w); err != nil {
			return errStyle.Render(err.Error())
		}

		return fmt.Sprintf("added %s -- %s (%g)", fields[1], fields[2], w)

	case "reset":
		g.Reset()

		return "graph cleared"

	case "nodes":
		nodes := g.Nodes()
		if len(nodes) == 0 {
			return "(empty graph)"
		}

		return strings.Join(nodes, ", ")

	case "neighbors":
		if len(fields) != 2 {
			return errStyle.Render("usage: neighbors <city>")
		}

		return renderNeighbors(g.Neighbors(fields[1]))

	case "solve":
		if len(fields) < 2 || len(fields) > 3 {
			return errStyle.Render("usage: solve <start> [algo]")
		}
		algo := tour.Exhaustive
		if len(fields) == 3 {
			parsed, err := parseAlgorithm(fields[2])
			if err != nil {
				return errStyle.Render(err.Error())
			}
			algo = parsed
		}
		res, err := tour.Solve(g.Snapshot(), fields[1], tour.WithAlgorithm(algo))
		if err != nil {
			return errStyle.Render(err.Error())
		}

		return renderResult(res)

	case "help":
		return sessionHelp

	default:
		return errStyle.Render(fmt.Sprintf("unknown command %q (try help)", fields[0]))
	}
}

// renderNeighbors formats a neighbor→distance map in sorted order.
func renderNeighbors(nbrs map[string]float64) string {
	if len(nbrs) == 0 {
		return "(no neighbors)"
	}
	ids := make([]string, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s = %g", id, nbrs[id]))
	}

	return strings.Join(parts, ", ")
}
