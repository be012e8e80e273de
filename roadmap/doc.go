// Package roadmap provides the immutable road map the route planner searches:
// intersections (NodeID) with planar positions and ordered, directed road
// lists, plus Euclidean distance between intersections.
//
// Overview:
//
//   - Map is validated once at construction (New, Builder.Build, Decode) and
//     never mutated afterwards, so every road endpoint is guaranteed to exist.
//   - Accessors (Neighbors, Position, Distance) report ErrUnknownNode for IDs
//     outside the map; they are the only lookup surface the planner uses.
//   - Maps round-trip through a small YAML (or JSON) document; see codec.go.
//   - Map40 exposes the embedded 40-intersection demo map.
//
// Thread safety:
//
//   - A *Map is read-only and may be shared by concurrent queries.
//   - Builder is not safe for concurrent use.
//
// Example:
//
//	m, err := roadmap.NewBuilder().
//	    AddNode(0, 0, 0).
//	    AddNode(1, 3, 4).
//	    Connect(0, 1).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := m.Distance(0, 1) // 5
package roadmap
