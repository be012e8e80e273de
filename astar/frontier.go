package astar

import (
	"cmp"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/routeplanner/roadmap"
)

// entry is one heap record. Several entries may exist for the same node;
// only the one whose g matches the node's current gScore is live.
type entry struct {
	id roadmap.NodeID
	f  float64
	g  float64
}

// byPriority orders entries by (f, g, id) ascending. This is the planner's
// tie-break: among equal f, prefer the node with lower cost so far, then the
// lower ID.
func byPriority(a, b interface{}) int {
	x, y := a.(entry), b.(entry)
	if c := cmp.Compare(x.f, y.f); c != 0 {
		return c
	}
	if c := cmp.Compare(x.g, y.g); c != 0 {
		return c
	}

	return cmp.Compare(x.id, y.id)
}

// frontier is the open set: membership in members, ordering in heap.
// Improving a node pushes a fresh entry (lazy decrease-key); stale entries
// are dropped when they surface.
type frontier struct {
	heap    *binaryheap.Heap
	members *hashset.Set
}

func newFrontier() *frontier {
	return &frontier{
		heap:    binaryheap.NewWith(byPriority),
		members: hashset.New(),
	}
}

// Len returns the number of nodes in the open set.
func (f *frontier) Len() int { return f.members.Size() }

// Contains reports open-set membership.
func (f *frontier) Contains(id roadmap.NodeID) bool { return f.members.Contains(id) }

// Add puts id in the open set without scheduling it.
func (f *frontier) Add(id roadmap.NodeID) { f.members.Add(id) }

// Schedule records a (possibly improved) priority for id.
func (f *frontier) Schedule(id roadmap.NodeID, fScore, gScore float64) {
	f.heap.Push(entry{id: id, f: fScore, g: gScore})
}

// PopMin removes and returns the open node with the smallest (f, g, id).
// gScore reports the node's current cost; entries that disagree with it are stale.
// The node stays in the open set; the caller decides whether to close it.
func (f *frontier) PopMin(gScore func(roadmap.NodeID) float64) (entry, bool) {
	for {
		v, ok := f.heap.Pop()
		if !ok {
			return entry{}, false
		}
		e := v.(entry)
		if !f.members.Contains(e.id) || e.g != gScore(e.id) {
			continue
		}

		return e, true
	}
}

// Remove takes id out of the open set. Its heap entries become stale.
func (f *frontier) Remove(id roadmap.NodeID) { f.members.Remove(id) }
