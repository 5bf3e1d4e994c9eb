// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors, NewGraph.
//
// The graph is always directed and simple with respect to ordered pairs:
// at most one edge per (from, to). Self-loops are opt-in via WithLoops.
// Every edge carries a mutable attribute map (e.g. "cost", "time") which is
// the only per-edge payload; there is no built-in weight field.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge for an existing ordered pair.
//	ErrEmptyAttrKey        - attribute key is the empty string.
//	ErrAttrMissing         - attribute is absent or nil.
//	ErrAttrNotNumeric      - attribute value cannot be read as float64.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted for an ordered pair
	// that already has an edge.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyAttrKey indicates an attribute operation with an empty key.
	ErrEmptyAttrKey = errors.New("core: attribute key is empty")

	// ErrAttrMissing indicates that an attribute is absent or nil.
	ErrAttrMissing = errors.New("core: attribute missing")

	// ErrAttrNotNumeric indicates that an attribute value is not a real number.
	ErrAttrNotNumeric = errors.New("core: attribute is not numeric")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a directed connection From→To.
//
// Attrs holds the named edge attributes. A key that is absent, or present
// with a nil value, is treated as "missing" by every reader in this module.
// Edge pointers returned by the Graph are read-only by convention; mutate
// attributes through Graph.SetEdgeAttr so the write happens under lock.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Attrs stores named attribute values (numbers for cost/time).
	Attrs map[string]interface{}

	// seq is the insertion sequence number; it defines Edges() order.
	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets attribute key to value on the new edge.
// Panics on an empty key.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	if key == "" {
		panic("core: WithEdgeAttr(\"\")")
	}
	return func(e *Edge) { e.Attrs[key] = value }
}

// Graph is a thread-safe, directed, attribute-carrying graph.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and attribute
// writes. Lock order is always muVert → muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and attributes

	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = edge; one edge per ordered pair.
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty directed Graph. Self-loops are rejected unless
// WithLoops is supplied.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
