// Package routeplanner finds shortest routes on static road maps with A*.
//
// 🚀 What is routeplanner?
//
//	A small library plus CLI that brings together:
//		• Road maps: intersections with planar positions and directed roads
//		• Map documents: YAML/JSON load & save, an embedded 40-node demo map
//		• Search: A* with the straight-line heuristic, deterministic tie-breaks
//		• Controls: context cancellation, expansion budgets, OnExpand hooks
//
// Everything is organized under a few packages:
//
//	roadmap/          - Map, NodeID, Point, Builder, Grid, codec, Map40 demo
//	astar/            - FindPath, Plan, PathPlanner and search options
//	internal/config/  - routeplan settings: defaults, file, environment
//	cmd/routeplan/    - the routeplan command (plan, validate, version)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	m, _ := roadmap.Grid(2, 2)
//	path, _ := astar.FindPath(m, 0, 3) // [0 1 3]
//
// Road lengths are Euclidean distances between intersection positions, and
// the heuristic is the straight-line distance to the goal, so every route
// returned is a shortest one.
//
//	go install github.com/katalvlaran/routeplanner/cmd/routeplan@latest
package routeplanner
