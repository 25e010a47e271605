// Package cli implements the tomatotask command-line façade. Each
// subcommand maps onto one store operation and translates failures into
// user-facing messages; the store itself never logs or retries.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/config"
	"github.com/sadopc/tomatotask/internal/store"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	st *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "tomatotask",
	Short: "Pomodoro task tracker",
	Long: `tomatotask tracks projects, tasks and timed pomodoro sessions in a
local SQLite database and reports daily and weekly productivity summaries.

Quick start:
  tomatotask task add "Write report" --estimate 3
  tomatotask session start --task 1 --type work
  tomatotask session complete 1
  tomatotask summary day`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		setupLogger(cfg.LogLevel, verbose)

		s, err := store.New(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		slog.Debug("database opened", "path", cfg.DBPath)
		st = s
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st == nil {
			return nil
		}
		return st.Close()
	},
}

// Execute runs the command tree and prints any failure as a user-facing
// message.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/tomatotask/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newTaskCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newExportCmd())
}

func setupLogger(level string, verbose bool) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	} else {
		switch strings.ToLower(level) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// userMessage translates a propagated store failure into the text shown to
// the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "nothing with that id exists"
	case errors.Is(err, store.ErrSessionFinished):
		return "that session is already finished"
	case errors.Is(err, store.ErrConstraint):
		return "value rejected: " + err.Error()
	case errors.Is(err, store.ErrCorrupt):
		return "the database is corrupted: " + err.Error()
	case errors.Is(err, store.ErrAccessUnavailable):
		return "the database is no longer available"
	default:
		return err.Error()
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func emitJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
