// Package roadmap defines the read-only road map consumed by the route planner:
// intersections with planar positions and ordered, directed road lists.
//
// This file declares NodeID, Point, Node, Map, sentinel errors, and the
// validating New constructor.
//
// Errors:
//
//	ErrUnknownNode   - an ID (query input or road endpoint) is not an intersection of the map.
//	ErrDuplicateNode - the same intersection ID was declared twice.
//	ErrBadPosition   - a coordinate is NaN or infinite.
//	ErrEmptyMap      - the map has no intersections.
//	ErrMalformedMap  - an encoded map could not be decoded.
package roadmap

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for road map construction and lookups.
var (
	// ErrUnknownNode indicates a lookup or road referenced an ID absent from the map.
	ErrUnknownNode = errors.New("roadmap: unknown node")

	// ErrDuplicateNode indicates that an intersection ID was added twice.
	ErrDuplicateNode = errors.New("roadmap: duplicate node")

	// ErrBadPosition indicates a non-finite coordinate.
	ErrBadPosition = errors.New("roadmap: position must be finite")

	// ErrEmptyMap indicates a map without intersections.
	ErrEmptyMap = errors.New("roadmap: map has no nodes")

	// ErrMalformedMap indicates an encoded map that could not be decoded.
	ErrMalformedMap = errors.New("roadmap: malformed map document")
)

// NodeID identifies an intersection. IDs are ordered so that callers
// (and the planner's tie-break) can enumerate them deterministically.
type NodeID int

// Point is a position on the plane.
type Point struct {
	X float64
	Y float64
}

// Node is a single intersection record.
type Node struct {
	// Pos is the intersection's position.
	Pos Point

	// Neighbors lists the intersections reachable over one road, in the
	// order they were declared. Roads are directed; a two-way street is
	// two entries, one in each endpoint's list.
	Neighbors []NodeID
}

// Map is an immutable road map. The zero value is an empty map; build
// usable maps with New, Builder, Decode, or LoadFile.
//
// A *Map never changes after construction, so it can be shared by any
// number of concurrent queries without locking.
type Map struct {
	nodes map[NodeID]Node
	ids   []NodeID // sorted ascending
	roads int      // total number of directed roads
}

// New builds a Map from the given node records after validating them.
// The input is deep-copied; later mutation of nodes does not affect the Map.
//
// Validation (in order):
//  1. at least one node (ErrEmptyMap);
//  2. every position finite, and every pairwise distance finite (ErrBadPosition);
//  3. every neighbor is itself a key of nodes (ErrUnknownNode).
//
// Complexity: O(V log V + E).
func New(nodes map[NodeID]Node) (*Map, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{
		nodes: make(map[NodeID]Node, len(nodes)),
		ids:   make([]NodeID, 0, len(nodes)),
	}

	// 1) Copy records and check coordinates.
	for id, n := range nodes {
		if !finite(n.Pos.X) || !finite(n.Pos.Y) {
			return nil, fmt.Errorf("%w: node %d at (%v, %v)", ErrBadPosition, id, n.Pos.X, n.Pos.Y)
		}
		nb := make([]NodeID, len(n.Neighbors))
		copy(nb, n.Neighbors)
		m.nodes[id] = Node{Pos: n.Pos, Neighbors: nb}
		m.ids = append(m.ids, id)
		m.roads += len(nb)
	}
	sort.Slice(m.ids, func(i, j int) bool { return m.ids[i] < m.ids[j] })

	// 2) Every pairwise distance must be finite; the bounding-box diagonal
	// is an upper bound for all of them.
	if span := m.span(); math.IsInf(span, 0) {
		return nil, fmt.Errorf("%w: coordinate span overflows distance", ErrBadPosition)
	}

	// 3) No dangling roads. Walk in ID order so the reported edge is stable.
	for _, id := range m.ids {
		for _, to := range m.nodes[id].Neighbors {
			if _, ok := m.nodes[to]; !ok {
				return nil, fmt.Errorf("%w: road %d→%d", ErrUnknownNode, id, to)
			}
		}
	}

	return m, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// span returns the diagonal of the bounding box of all positions.
func (m *Map) span() float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range m.nodes {
		minX, maxX = math.Min(minX, n.Pos.X), math.Max(maxX, n.Pos.X)
		minY, maxY = math.Min(minY, n.Pos.Y), math.Max(maxY, n.Pos.Y)
	}

	return math.Hypot(maxX-minX, maxY-minY)
}
