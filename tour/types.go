// Package tour - result type, algorithm selector, options and sentinel errors.
package tour

import (
	"context"
	"errors"
)

// Graph is the read-only query surface the solvers consume. Both
// *citygraph.Graph and *citygraph.Snapshot satisfy it; prefer passing a
// snapshot so a long-running solve cannot observe concurrent mutations.
type Graph interface {
	// Nodes returns all city IDs, sorted lexicographically ascending.
	Nodes() []string

	// HasNode reports whether the city is present.
	HasNode(id string) bool

	// Weight returns the distance of the undirected edge u–v, or an error
	// when no such edge is recorded (including u == v).
	Weight(u, v string) (float64, error)
}

// Sentinel errors returned by the tour solvers.
var (
	// ErrNilGraph indicates a nil Graph was passed to Solve.
	ErrNilGraph = errors.New("tour: graph is nil")

	// ErrEmptyGraph indicates a solve was requested on a graph with no cities.
	ErrEmptyGraph = errors.New("tour: graph is empty")

	// ErrStartNotFound indicates the requested start city is absent from the
	// snapshot.
	ErrStartNotFound = errors.New("tour: start city not found in graph")

	// ErrIncompleteGraph indicates some candidate cycle requires an edge that
	// does not exist; an exact tour needs a complete graph over the cities.
	ErrIncompleteGraph = errors.New("tour: graph is not complete over its cities")

	// ErrUnsupportedAlgorithm indicates an Algorithm value Solve does not know.
	ErrUnsupportedAlgorithm = errors.New("tour: unsupported algorithm")

	// ErrCanceled indicates the solve was interrupted via its context before
	// finishing. No partial or best-so-far route is ever returned with it.
	ErrCanceled = errors.New("tour: solve canceled")

	// ErrBadRoute indicates a malformed route passed to RouteCost
	// (too short, or not closed at its start city).
	ErrBadRoute = errors.New("tour: malformed route")
)

// Algorithm selects the solving strategy used by Solve.
type Algorithm int

const (
	// Exhaustive enumerates all Hamiltonian cycles lazily and keeps the
	// first minimal one; O(n!) time. The default, and the algorithm that
	// defines the package's tie-break contract.
	Exhaustive Algorithm = iota

	// ExactHeldKarp runs the Held–Karp bitmask DP; O(n²·2ⁿ) time.
	// Exact as well, suitable somewhat past the exhaustive ceiling.
	ExactHeldKarp
)

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case ExactHeldKarp:
		return "heldkarp"
	default:
		return "unknown"
	}
}

// Result holds a solved tour.
type Result struct {
	// Route is the closed tour: n+1 city IDs, starting and ending at the
	// chosen start, visiting every other city exactly once.
	Route []string

	// Cost is the total distance of the cycle, including the closing edge.
	Cost float64
}

// Options configures a single Solve call.
//
// Algo – which exact algorithm to run (default Exhaustive).
// Ctx  – cancellation context, polled between candidate evaluations
// (default context.Background(), i.e. never canceled).
type Options struct {
	Algo Algorithm
	Ctx  context.Context
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithAlgorithm selects the solving strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithContext attaches a cancellation context to the solve. The solver polls
// ctx between permutation evaluations (or DP subset layers) and aborts with
// ErrCanceled once it is done; it never returns a partial route.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Exhaustive search, no cancellation.
func DefaultOptions() Options {
	return Options{
		Algo: Exhaustive,
		Ctx:  context.Background(),
	}
}

// canceled reports the context error, wrapped in ErrCanceled, or nil.
// A nil context means no cancellation.
func (o Options) canceled() error {
	if o.Ctx == nil {
		return nil
	}
	if err := o.Ctx.Err(); err != nil {
		return errors.Join(ErrCanceled, err)
	}

	return nil
}
