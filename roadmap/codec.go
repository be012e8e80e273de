// File: codec.go
// Role: YAML/JSON encoding of road maps.
//
// Document shape (JSON is accepted as well, being a YAML subset):
//
//	intersections:        # node ID → [x, y]
//	  0: [0.78, 0.49]
//	  1: [0.52, 0.15]
//	roads:                # node ID → ordered neighbor IDs
//	  0: [1]
//	  1: [0]
//
// Intersections without a roads entry have no outgoing roads.
package roadmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// document is the on-disk form. Keys are decoded as strings so that both
// YAML integer keys and JSON string keys are accepted.
type document struct {
	Intersections map[string][]float64 `yaml:"intersections"`
	Roads         map[string][]NodeID  `yaml:"roads"`
}

// encodedDocument is the form written by Encode; integer keys keep the
// output ordered numerically.
type encodedDocument struct {
	Intersections map[NodeID][]float64 `yaml:"intersections"`
	Roads         map[NodeID][]NodeID  `yaml:"roads"`
}

// Decode reads one map document from r and validates it.
//
// Errors:
//   - ErrMalformedMap for syntax errors, unknown fields, bad keys, or positions
//     that are not exactly two numbers.
//   - ErrUnknownNode if a roads entry names an undeclared intersection.
//   - any error returned by New.
func Decode(r io.Reader) (*Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedMap)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}

	// Keys are visited in sorted order so that errors are reported stably.
	nodes := make(map[NodeID]Node, len(doc.Intersections))
	for _, key := range sortedKeys(doc.Intersections) {
		pos := doc.Intersections[key]
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		if _, dup := nodes[id]; dup {
			return nil, fmt.Errorf("%w: intersection %d (key %q)", ErrDuplicateNode, id, key)
		}
		if len(pos) != 2 {
			return nil, fmt.Errorf("%w: intersection %d has %d coordinates, want 2", ErrMalformedMap, id, len(pos))
		}
		nodes[id] = Node{Pos: Point{X: pos[0], Y: pos[1]}}
	}

	seen := make(map[NodeID]struct{}, len(doc.Roads))
	for _, key := range sortedKeys(doc.Roads) {
		to := doc.Roads[key]
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: roads for %d (key %q)", ErrDuplicateNode, id, key)
		}
		seen[id] = struct{}{}
		n, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: roads declared for %d", ErrUnknownNode, id)
		}
		n.Neighbors = to
		nodes[id] = n
	}

	return New(nodes)
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m as a YAML document that Decode reads back unchanged.
//
// Errors:
//   - ErrEmptyMap if m is nil or has no intersections.
func (m *Map) Encode(w io.Writer) error {
	if m.Len() == 0 {
		return fmt.Errorf("roadmap: encode: %w", ErrEmptyMap)
	}
	doc := encodedDocument{
		Intersections: make(map[NodeID][]float64, m.Len()),
		Roads:         make(map[NodeID][]NodeID, m.Len()),
	}
	for _, id := range m.ids {
		n := m.nodes[id]
		doc.Intersections[id] = []float64{n.Pos.X, n.Pos.Y}
		if len(n.Neighbors) > 0 {
			doc.Roads[id] = n.Neighbors
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("roadmap: encode: %w", err)
	}

	return enc.Close()
}

func parseID(key string) (NodeID, error) {
	v, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: node key %q is not an integer", ErrMalformedMap, key)
	}

	return NodeID(v), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
