package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roundtrip/citygraph"
	"github.com/katalvlaran/roundtrip/tour"
)

// edgeSpec is the YAML/flag-level shape of one undirected edge.
type edgeSpec struct {
	From   string  `mapstructure:"from"`
	To     string  `mapstructure:"to"`
	Weight float64 `mapstructure:"weight"`
}

var (
	solveStart string
	solveAlgo  string
	solveEdges []string
	solveFile  string
)

var solveCmd *cobra.Command

func init() {
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the optimal closed tour for a graph given up front",
		Long: `Builds a city graph from --edge flags and/or a YAML file, then computes
the exact minimum-distance closed tour from the start city.

Each --edge takes "from:to:weight". The YAML file carries the same data:

  start: Kyiv
  algo: exhaustive
  edges:
    - { from: Kyiv, to: Lviv,   weight: 540 }
    - { from: Kyiv, to: Odesa,  weight: 475 }
    - { from: Lviv, to: Odesa,  weight: 790 }

Example:
  roundtrip solve --start=A --edge A:B:10 --edge B:C:15 --edge A:C:20
  roundtrip solve --file plan.yaml --algo heldkarp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := citygraph.NewGraph()

			// File-provided edges first; explicit flags may then overwrite
			// (last-write-wins matches the graph's own insert semantics).
			if solveFile != "" {
				if err := loadPlanFile(g); err != nil {
					return err
				}
			}
			for _, raw := range solveEdges {
				spec, err := parseEdgeFlag(raw)
				if err != nil {
					return err
				}
				if err = g.AddEdge(spec.From, spec.To, spec.Weight); err != nil {
					return err
				}
			}

			if solveStart == "" {
				return fmt.Errorf("missing required start city (--start or file 'start' key)")
			}
			algo, err := parseAlgorithm(solveAlgo)
			if err != nil {
				return err
			}

			res, err := tour.Solve(
				g.Snapshot(),
				solveStart,
				tour.WithAlgorithm(algo),
				tour.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))

			return nil
		},
	}

	solveCmd.Flags().StringVar(&solveStart, "start", "", "Start city of the tour")
	solveCmd.Flags().StringVar(&solveAlgo, "algo", "exhaustive", "Algorithm: exhaustive | heldkarp")
	solveCmd.Flags().StringArrayVar(&solveEdges, "edge", nil, `Edge in "from:to:weight" form (repeatable)`)
	solveCmd.Flags().StringVar(&solveFile, "file", "", "YAML file with edges, start and algo")

	rootCmd.AddCommand(solveCmd)
}

// loadPlanFile reads a YAML plan via viper and feeds its edges into g.
// File-level start/algo act as defaults: flags set explicitly win.
func loadPlanFile(g *citygraph.Graph) error {
	v := viper.New()
	v.SetConfigFile(solveFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}

	var edges []edgeSpec
	if err := v.UnmarshalKey("edges", &edges); err != nil {
		return fmt.Errorf("parsing plan file edges: %w", err)
	}
	for _, spec := range edges {
		if err := g.AddEdge(spec.From, spec.To, spec.Weight); err != nil {
			return err
		}
	}

	if solveStart == "" {
		solveStart = v.GetString("start")
	}
	if !solveCmd.Flags().Changed("algo") && v.IsSet("algo") {
		solveAlgo = v.GetString("algo")
	}

	return nil
}

// parseEdgeFlag splits "from:to:weight" into an edgeSpec.
func parseEdgeFlag(raw string) (edgeSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return edgeSpec{}, fmt.Errorf("malformed --edge %q: want \"from:to:weight\"", raw)
	}
	w, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return edgeSpec{}, fmt.Errorf("malformed --edge %q: weight: %w", raw, err)
	}

	return edgeSpec{From: parts[0], To: parts[1], Weight: w}, nil
}

// parseAlgorithm maps a CLI name to the solver constant.
func parseAlgorithm(name string) (tour.Algorithm, error) {
	switch strings.ToLower(name) {
	case "", tour.Exhaustive.String():
		return tour.Exhaustive, nil
	case tour.ExactHeldKarp.String():
		return tour.ExactHeldKarp, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want exhaustive or heldkarp)", name)
	}
}
