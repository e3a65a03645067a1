// Package citygraph - core types and sentinel errors for the city graph.
//
// This file declares the Graph type, its constructor, and the sentinel
// errors shared by all graph operations.
package citygraph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidEdge indicates a rejected insertion: either both endpoints
	// are the same city (self-loop) or the weight is negative.
	ErrInvalidEdge = errors.New("citygraph: invalid edge")

	// ErrNoSuchEdge indicates a weight query for a pair of cities with no
	// recorded edge between them (including u == v).
	ErrNoSuchEdge = errors.New("citygraph: no such edge")
)

// Graph is the in-memory weighted undirected city graph.
//
// adjacency[u][v] holds the distance of the edge u–v; the mirror entry
// adjacency[v][u] always holds the same value. mu guards all access.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]float64),
	}
}
