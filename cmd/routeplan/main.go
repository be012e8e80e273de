// Command routeplan plans shortest routes on a road map with A*.
//
// Usage:
//
//	routeplan plan --from 5 --to 34 [--map city.yaml] [--json]
//	routeplan validate [--map city.yaml]
//	routeplan version
//
// Without --map (and without a map path in the config file or ROUTEPLAN_MAP)
// the embedded 40-intersection demo map is used.
//
// Exit status: 0 on success, 2 when the goal is unreachable, 1 on any other error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/internal/config"
	"github.com/katalvlaran/routeplanner/roadmap"
)

var version = "0.1.0-dev"

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, astar.ErrNoPathFound):
		// Already reported on stdout by the plan command.
		return exitNoPath
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}

// app carries state resolved once by the root command for its subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "routeplan",
		Short: "Shortest routes on road maps with A*",
		Long: `routeplan finds minimum-length routes between intersections of a road map.

Road lengths and the search heuristic are straight-line distances between
intersection positions, so every route it prints is a shortest one.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().String("map", "", "Road map file (YAML or JSON); default is the built-in demo map")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newPlanCmd(a),
		newValidateCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// resolve merges config file, environment and flags, then builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("map") {
		cfg.Map.Path, _ = flags.GetString("map")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logging.NewLogger(cmd.ErrOrStderr())

	return nil
}

// loadMap returns the configured map, or the demo map when no path is set.
func (a *app) loadMap() (*roadmap.Map, string, error) {
	if a.cfg.Map.Path == "" {
		return roadmap.Map40(), "demo:map40", nil
	}
	m, err := roadmap.LoadFile(a.cfg.Map.Path)
	if err != nil {
		return nil, a.cfg.Map.Path, err
	}

	return m, a.cfg.Map.Path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "routeplan version %s\n", version)

			return nil
		},
	}
}
