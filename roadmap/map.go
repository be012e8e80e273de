// File: map.go
// Role: Read-only accessors over an immutable Map.
//
// Determinism:
//   - NodeIDs() returns IDs sorted ascending.
//   - Neighbors() preserves declaration order.
package roadmap

import (
	"fmt"
	"math"
)

// Len returns the number of intersections.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.ids)
}

// Roads returns the number of directed roads.
func (m *Map) Roads() int {
	if m == nil {
		return 0
	}

	return m.roads
}

// Has reports whether id is an intersection of m.
func (m *Map) Has(id NodeID) bool {
	if m == nil {
		return false
	}
	_, ok := m.nodes[id]

	return ok
}

// NodeIDs returns all intersection IDs in ascending order.
// The returned slice is a copy and may be modified by the caller.
func (m *Map) NodeIDs() []NodeID {
	if m == nil {
		return nil
	}
	out := make([]NodeID, len(m.ids))
	copy(out, m.ids)

	return out
}

// Neighbors returns the intersections reachable from id over one road,
// in declaration order. The slice is a copy.
//
// Errors:
//   - ErrUnknownNode if id is not in the map.
func (m *Map) Neighbors(id NodeID) ([]NodeID, error) {
	n, err := m.node(id)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(n.Neighbors))
	copy(out, n.Neighbors)

	return out, nil
}

// Position returns the coordinates of id.
//
// Errors:
//   - ErrUnknownNode if id is not in the map.
func (m *Map) Position(id NodeID) (Point, error) {
	n, err := m.node(id)
	if err != nil {
		return Point{}, err
	}

	return n.Pos, nil
}

// Distance returns the Euclidean (L2) distance between the positions of a and b.
// It is symmetric and never negative.
//
// Errors:
//   - ErrUnknownNode if either endpoint is not in the map.
//
// Complexity: O(1).
func (m *Map) Distance(a, b NodeID) (float64, error) {
	pa, err := m.Position(a)
	if err != nil {
		return 0, err
	}
	pb, err := m.Position(b)
	if err != nil {
		return 0, err
	}

	return pa.DistanceTo(pb), nil
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// node is the single lookup path shared by all accessors.
func (m *Map) node(id NodeID) (Node, error) {
	if m == nil {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n, ok := m.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return n, nil
}
