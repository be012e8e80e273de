// Package astar defines core types and configuration options for A* route
// search over a roadmap.Map.
//
// Options:
//
//	– WithContext:       cancellation, checked once per main-loop iteration.
//	– WithOnExpand:      hook called for every node moved to the explored set.
//	– WithMaxExpansions: cap on the number of expanded nodes.
//	– WithLogger:        debug tracing of the main loop.
//
// Errors (sentinel):
//
//	– ErrNilMap            if the provided map pointer is nil.
//	– ErrNoPathFound       if the goal is unreachable from the start.
//	– ErrBudgetExceeded    if MaxExpansions nodes were expanded without reaching the goal.
//	– ErrBadMaxExpansions  if MaxExpansions < 0.
//	– roadmap.ErrUnknownNode (wrapped) if start or goal is not in the map.
package astar

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/routeplanner/roadmap"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilMap indicates that a nil *roadmap.Map was passed to the planner.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrNoPathFound indicates the frontier was exhausted without reaching the goal.
	// This is an ordinary outcome for disconnected maps, not a malfunction.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrBudgetExceeded indicates the MaxExpansions budget ran out before the goal was selected.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Options configures a single planner run.
//
// Ctx           – cancellation; defaults to context.Background().
// OnExpand      – called with each node right after it is moved to the explored set;
//
//	a non-nil error aborts the run and is returned as-is.
//
// MaxExpansions – maximum number of expanded nodes; 0 means unlimited.
// Logger        – receives Debug records for every expansion and relaxation;
//
//	defaults to a logger that discards everything.
type Options struct {
	Ctx           context.Context
	OnExpand      func(id roadmap.NodeID) error
	MaxExpansions int
	Logger        *slog.Logger
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(id roadmap.NodeID) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions limits how many nodes may be expanded.
// Zero disables the limit; a negative value panics with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes debug tracing to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a background context, no hook,
// no expansion limit, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      nil,
		MaxExpansions: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path lists the nodes from start to goal inclusive.
	Path []roadmap.NodeID

	// Cost is the total Euclidean length of Path.
	Cost float64

	// Expanded counts nodes moved to the explored set.
	Expanded int

	// Discovered counts nodes that ever entered the frontier, start included.
	Discovered int
}

func (r *Result) clone() *Result {
	c := *r
	c.Path = append([]roadmap.NodeID(nil), r.Path...)

	return &c
}
