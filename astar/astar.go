package astar

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/routeplanner/roadmap"
)

// FindPath returns the shortest route from start to goal in m, both inclusive.
// It is Plan without the diagnostics.
//
// Errors:
//   - ErrNilMap, roadmap.ErrUnknownNode (wrapped) for invalid input.
//   - ErrNoPathFound if goal is unreachable.
//   - ErrBudgetExceeded, ctx.Err(), or an OnExpand error if the run was aborted.
func FindPath(m *roadmap.Map, start, goal roadmap.NodeID, opts ...Option) ([]roadmap.NodeID, error) {
	res, err := Plan(m, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Plan runs one A* query and returns the full Result.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with the lazy-decrease-key heap.
//   - Space: O(V + E).
func Plan(m *roadmap.Map, start, goal roadmap.NodeID, opts ...Option) (*Result, error) {
	p, err := NewPathPlanner(m, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return p.Run()
}

// PathPlanner is a single A* query over an immutable map. It owns its search
// state; create one planner per query. Not safe for concurrent use.
type PathPlanner struct {
	m     *roadmap.Map
	start roadmap.NodeID
	goal  roadmap.NodeID
	opts  Options

	ran bool
	res *Result
	err error
}

// NewPathPlanner validates the query and prepares a planner. No search
// happens until Run (or Path) is called.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. start must be in m (roadmap.ErrUnknownNode).
//  3. goal must be in m (roadmap.ErrUnknownNode).
func NewPathPlanner(m *roadmap.Map, start, goal roadmap.NodeID, opts ...Option) (*PathPlanner, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if !m.Has(start) {
		return nil, fmt.Errorf("%w: start %d", roadmap.ErrUnknownNode, start)
	}
	if !m.Has(goal) {
		return nil, fmt.Errorf("%w: goal %d", roadmap.ErrUnknownNode, goal)
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &PathPlanner{m: m, start: start, goal: goal, opts: cfg}, nil
}

// Run performs the search on first call and returns the memoised outcome
// on every later call. Each call returns its own copy of the Result.
func (p *PathPlanner) Run() (*Result, error) {
	if !p.ran {
		p.ran = true
		p.res, p.err = p.search()
	}
	if p.err != nil {
		return nil, p.err
	}

	return p.res.clone(), nil
}

// Path runs the search if needed and returns a copy of the route, or nil on failure.
func (p *PathPlanner) Path() []roadmap.NodeID {
	res, err := p.Run()
	if err != nil {
		return nil
	}

	return res.Path
}

func (p *PathPlanner) search() (*Result, error) {
	log := p.opts.Logger.With(slog.Int("start", int(p.start)), slog.Int("goal", int(p.goal)))

	// Trivial route: no search context needed.
	if p.start == p.goal {
		log.Debug("astar: start equals goal")
		return &Result{Path: []roadmap.NodeID{p.start}, Discovered: 1}, nil
	}

	r, err := newRunner(p.m, p.start, p.goal, p.opts, log)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		log.Debug("astar: search failed", slog.Int("expanded", r.expanded), slog.Any("err", err))
		return nil, err
	}

	res := &Result{
		Path:       r.reconstruct(),
		Cost:       r.g(p.goal),
		Expanded:   r.expanded,
		Discovered: r.discovered,
	}
	log.Debug("astar: path found",
		slog.Int("hops", len(res.Path)-1),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded))

	return res, nil
}

// runner holds the mutable search context of one query. It is discarded
// when the query ends, whatever the outcome.
type runner struct {
	m       *roadmap.Map
	start   roadmap.NodeID
	goal    roadmap.NodeID
	options Options
	log     *slog.Logger

	frontier    *frontier                         // open set
	explored    *hashset.Set                      // closed set
	predecessor map[roadmap.NodeID]roadmap.NodeID // best known parent
	gScore      map[roadmap.NodeID]float64        // absent ⇒ +Inf
	fScore      map[roadmap.NodeID]float64        // absent ⇒ +Inf

	expanded   int
	discovered int
}

// newRunner seeds the search context: frontier = {start}, gScore[start] = 0,
// fScore[start] = h(start).
func newRunner(m *roadmap.Map, start, goal roadmap.NodeID, cfg Options, log *slog.Logger) (*runner, error) {
	h, err := m.Distance(start, goal)
	if err != nil {
		return nil, err
	}

	r := &runner{
		m:           m,
		start:       start,
		goal:        goal,
		options:     cfg,
		log:         log,
		frontier:    newFrontier(),
		explored:    hashset.New(),
		predecessor: make(map[roadmap.NodeID]roadmap.NodeID),
		gScore:      map[roadmap.NodeID]float64{start: 0},
		fScore:      map[roadmap.NodeID]float64{start: h},
		discovered:  1,
	}
	r.frontier.Add(start)
	r.frontier.Schedule(start, h, 0)

	return r, nil
}

// g returns the best known cost from start to id.
func (r *runner) g(id roadmap.NodeID) float64 {
	if v, ok := r.gScore[id]; ok {
		return v
	}

	return math.Inf(1)
}

// process is the A* main loop. It returns nil once the goal is selected
// from the frontier, ErrNoPathFound once the frontier is exhausted.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.frontier.Len() > 0 {
		// 1) Cancellation point, once per iteration.
		if err := ctx.Err(); err != nil {
			return err
		}

		// 2) Select the open node with minimum (f, g, id).
		cur, ok := r.frontier.PopMin(r.g)
		if !ok {
			break
		}

		// 3) Goal selected: its gScore is final.
		if cur.id == r.goal {
			return nil
		}

		// 4) Budget check before closing another node.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d nodes expanded", ErrBudgetExceeded, r.expanded)
		}

		// 5) Close the node. Closed nodes are never reopened.
		r.frontier.Remove(cur.id)
		r.explored.Add(cur.id)
		r.expanded++
		r.log.Debug("astar: expand", slog.Int("node", int(cur.id)), slog.Float64("f", cur.f), slog.Float64("g", cur.g))

		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(cur.id); err != nil {
				return err
			}
		}

		// 6) Relax outgoing roads.
		if err := r.relax(cur.id); err != nil {
			return err
		}
	}

	return ErrNoPathFound
}

// relax examines every road leaving u. Unseen neighbors join the frontier;
// a neighbor is updated only when the route through u is strictly shorter.
func (r *runner) relax(u roadmap.NodeID) error {
	neighbors, err := r.m.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %d: %w", u, err)
	}

	gu := r.g(u)
	var v roadmap.NodeID
	for _, v = range neighbors {
		if r.explored.Contains(v) {
			continue
		}
		if !r.frontier.Contains(v) {
			r.frontier.Add(v)
			r.discovered++
		}

		w, err := r.m.Distance(u, v)
		if err != nil {
			return err
		}
		// A node seen for the first time is always scheduled, even when its
		// cost overflowed to +Inf, so that it stays selectable.
		tentative := gu + w
		if gv, seen := r.gScore[v]; seen && tentative >= gv {
			continue
		}

		// The heuristic belongs to v itself, not to its parent.
		h, err := r.m.Distance(v, r.goal)
		if err != nil {
			return err
		}
		r.predecessor[v] = u
		r.gScore[v] = tentative
		r.fScore[v] = tentative + h
		r.frontier.Schedule(v, r.fScore[v], tentative)
		r.log.Debug("astar: relax", slog.Int("node", int(v)), slog.Int("via", int(u)), slog.Float64("g", tentative))
	}

	return nil
}

// reconstruct walks predecessor links back from the goal. The start is the
// only node on the chain without a predecessor.
func (r *runner) reconstruct() []roadmap.NodeID {
	path := []roadmap.NodeID{r.goal}
	cur := r.goal
	for {
		prev, ok := r.predecessor[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
