package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/roadmap"
)

// planOutput is the --json form of a plan result.
type planOutput struct {
	From     roadmap.NodeID   `json:"from"`
	To       roadmap.NodeID   `json:"to"`
	Found    bool             `json:"found"`
	Path     []roadmap.NodeID `json:"path,omitempty"`
	Cost     float64          `json:"cost,omitempty"`
	Expanded int              `json:"expanded,omitempty"`
}

func newPlanCmd(a *app) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "plan --from ID --to ID",
		Short: "Find the shortest route between two intersections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, source, err := a.loadMap()
			if err != nil {
				return err
			}
			log := a.logger.With(slog.String("map", source))

			ctx := cmd.Context()
			if a.cfg.Search.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Search.Timeout)
				defer cancel()
			}

			opts := []astar.Option{
				astar.WithContext(ctx),
				astar.WithLogger(log),
			}
			if a.cfg.Search.MaxExpansions > 0 {
				opts = append(opts, astar.WithMaxExpansions(a.cfg.Search.MaxExpansions))
			}

			start, goal := roadmap.NodeID(from), roadmap.NodeID(to)
			res, err := astar.Plan(m, start, goal, opts...)
			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if errors.Is(err, astar.ErrNoPathFound) {
				log.Info("no path found", slog.Int("from", from), slog.Int("to", to))
				if jsonOut {
					if werr := writeJSON(out, planOutput{From: start, To: goal}); werr != nil {
						return werr
					}
				} else {
					fmt.Fprintln(out, "no path found")
				}
				return err
			}
			if err != nil {
				return err
			}

			log.Info("route planned",
				slog.Int("from", from), slog.Int("to", to),
				slog.Int("hops", len(res.Path)-1), slog.Float64("cost", res.Cost))
			if jsonOut {
				return writeJSON(out, planOutput{
					From:     start,
					To:       goal,
					Found:    true,
					Path:     res.Path,
					Cost:     res.Cost,
					Expanded: res.Expanded,
				})
			}
			fmt.Fprintln(out, formatPath(res.Path))
			fmt.Fprintf(out, "cost: %.6f (expanded %d nodes)\n", res.Cost, res.Expanded)

			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Start intersection ID")
	cmd.Flags().IntVar(&to, "to", 0, "Goal intersection ID")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// formatPath renders a route as "5 -> 16 -> 34".
func formatPath(path []roadmap.NodeID) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprint(int(id))
	}

	return strings.Join(parts, " -> ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
