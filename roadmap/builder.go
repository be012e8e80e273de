// File: builder.go
// Role: Incremental construction of a Map (AddNode / Connect), plus the
// Grid fixture constructor.
//
// Contract:
//   - Builder methods never panic; the first failure is remembered and
//     returned by Build, later calls become no-ops.
//   - Roads may reference nodes that are added later; dangling references
//     are only rejected by Build.
//   - Build is deterministic: same call sequence ⇒ identical Map.
package roadmap

import "fmt"

// Builder assembles a Map one intersection and road at a time.
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	nodes map[NodeID]Node
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[NodeID]Node)}
}

// AddNode declares intersection id at (x, y).
// Declaring the same id twice records ErrDuplicateNode.
func (b *Builder) AddNode(id NodeID, x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if b.nodes == nil {
		b.nodes = make(map[NodeID]Node)
	}
	if _, ok := b.nodes[id]; ok {
		b.err = fmt.Errorf("%w: %d", ErrDuplicateNode, id)
		return b
	}
	b.nodes[id] = Node{Pos: Point{X: x, Y: y}}

	return b
}

// ConnectDirected adds a one-way road from → to.
// The from endpoint must already be declared.
func (b *Builder) ConnectDirected(from, to NodeID) *Builder {
	if b.err != nil {
		return b
	}
	n, ok := b.nodes[from]
	if !ok {
		b.err = fmt.Errorf("%w: road %d→%d", ErrUnknownNode, from, to)
		return b
	}
	n.Neighbors = append(n.Neighbors, to)
	b.nodes[from] = n

	return b
}

// Connect adds a two-way road between a and b (one road in each direction).
// A self-loop (a == b) is recorded once.
func (b *Builder) Connect(a, c NodeID) *Builder {
	b.ConnectDirected(a, c)
	if a != c {
		b.ConnectDirected(c, a)
	}

	return b
}

// Build validates the accumulated records and returns the Map.
func (b *Builder) Build() (*Map, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(b.nodes)
}

// Grid builds a rows×cols lattice with unit spacing and four-way two-way roads.
// Node (r, c) has ID r*cols + c and position (c, r).
//
// Errors:
//   - ErrEmptyMap if rows or cols is not positive.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) (*Map, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrEmptyMap, rows, cols)
	}
	b := NewBuilder()
	id := func(r, c int) NodeID { return NodeID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.AddNode(id(r, c), float64(c), float64(r))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.Connect(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				b.Connect(id(r, c), id(r+1, c))
			}
		}
	}

	return b.Build()
}
