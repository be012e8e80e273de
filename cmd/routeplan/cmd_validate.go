package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load a road map and report whether it is well formed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, source, err := a.loadMap()
			if err != nil {
				return err
			}
			a.logger.Debug("map loaded", "map", source, "nodes", m.Len(), "roads", m.Roads())

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"map":   source,
					"valid": true,
					"nodes": m.Len(),
					"roads": m.Roads(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d intersections, %d roads)\n", source, m.Len(), m.Roads())

			return nil
		},
	}
}
