// Package astar implements A* best-first route search on a roadmap.Map, with
// Euclidean road costs and the straight-line distance to the goal as heuristic.
//
// Overview:
//
//   - FindPath(m, start, goal) returns the node sequence of a minimum-length route,
//     start and goal inclusive.
//   - Plan returns the same route with diagnostics (Cost, Expanded, Discovered).
//   - PathPlanner splits validation (NewPathPlanner) from the search (Run) for
//     callers that want to inspect the query before running it.
//
// Algorithm:
//
//   - The frontier starts as {start} with g(start)=0 and f(start)=h(start).
//   - Each iteration selects the frontier node with the smallest f. Ties are broken
//     by smaller g, then smaller NodeID, so results never depend on map iteration order.
//   - Selecting the goal ends the search; the route is rebuilt by following
//     predecessor links back to the start (the only node without one).
//   - Otherwise the node is closed and its roads are relaxed. Closed nodes are
//     never reopened; unseen neighbors join the frontier before the improvement
//     test; an update requires a strictly smaller g and recomputes f from the
//     updated node's own heuristic.
//   - start == goal returns [start] without entering the loop.
//
// Because road costs are themselves Euclidean lengths, the heuristic is admissible
// and consistent, so the first time the goal is selected its route is optimal.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E). The frontier is a binary heap with lazy decrease-key:
//     improvements push a new entry and stale ones are discarded when popped.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilMap:         nil map.
//   - roadmap.ErrUnknownNode (wrapped): start or goal not in the map.
//   - ErrNoPathFound:    the goal is unreachable; an expected, non-fatal outcome.
//   - ErrBudgetExceeded: WithMaxExpansions limit reached.
//   - context errors from WithContext, and any error returned by an OnExpand hook.
//
// Thread safety:
//
//   - The map is only read, so any number of queries may run concurrently on one *roadmap.Map.
//   - A PathPlanner owns mutable search state and must not be shared between goroutines.
package astar
