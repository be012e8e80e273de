package roadmap

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed maps/map40.yaml
var map40YAML []byte

var map40 = sync.OnceValue(func() *Map {
	m, err := Decode(bytes.NewReader(map40YAML))
	if err != nil {
		panic("roadmap: embedded map40 is invalid: " + err.Error())
	}
	return m
})

// Map40 returns the embedded 40-intersection demo map. The same immutable
// *Map is returned on every call.
func Map40() *Map { return map40() }

// Map40YAML returns a copy of the embedded demo map document.
func Map40YAML() []byte { return bytes.Clone(map40YAML) }
