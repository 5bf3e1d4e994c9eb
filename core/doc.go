// Package core provides a thread-safe, in-memory directed graph whose edges
// carry named attributes.
//
// The Graph G = (V,E) is the collaborator every solver in this module reads:
//
//   - Directed only, one edge per ordered pair (from, to)
//   - Self-loops are opt-in (WithLoops)
//   - Per-edge attribute maps (Attrs) hold values such as "cost" and "time"
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices() is sorted by ID, Edges() and OutEdges()
// follow edge insertion order.
//
// Attribute semantics:
//
//	A key that is absent, or whose value is nil, is "missing".
//	Edge.Float(key) coerces any built-in numeric kind to float64 and
//	reports ErrAttrMissing / ErrAttrNotNumeric otherwise.
//	FillEdgeAttr(key, v) writes v only where key is missing (idempotent).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//	Vertices() []string                // O(V·log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	EdgeBetween(from, to string) (*Edge, error)
//	Edges() []*Edge                    // O(E·log E)
//	OutEdges(id string) ([]*Edge, error)
//
//	// Attributes
//	EdgeAttr(eid, key string) (interface{}, error)
//	SetEdgeAttr(eid, key string, value interface{}) error
//	FillEdgeAttr(key string, value interface{}) (int, error)
//
//	// Cloning & maintenance
//	CloneEmpty() *Graph, Clone() *Graph, Clear(), FilterEdges(pred), Stats()
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrLoopNotAllowed,
//	ErrMultiEdgeNotAllowed, ErrEmptyAttrKey, ErrAttrMissing, ErrAttrNotNumeric.
package core
