package main

import (
	"fmt"

	"github.com/aretw0/vfsh/internal/cli"
	"github.com/aretw0/vfsh/internal/config"
	"github.com/aretw0/vfsh/internal/logging"
	"github.com/aretw0/vfsh/pkg/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded command transcripts",
	Long:  `List, show, and remove session transcripts kept by the file or redis history backend.`,
}

var historyLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ids, err := store.Sessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No recorded sessions found.")
			return nil
		}
		fmt.Fprintln(out, "Recorded Sessions:")
		for _, id := range ids {
			fmt.Fprintln(out, "- "+id)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the transcript of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		lines, err := store.Lines(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error loading session '%s': %w", args[0], err)
		}
		for i, line := range lines {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", i+1, line)
		}
		return nil
	},
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more transcripts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		var errs []error
		for _, id := range args {
			if err := store.Delete(cmd.Context(), id); err != nil {
				fmt.Fprintf(out, "Error removing '%s': %v\n", id, err)
				errs = append(errs, err)
				continue
			}
			fmt.Fprintf(out, "Removed session '%s'\n", id)
		}
		if len(errs) > 0 {
			return fmt.Errorf("failed to remove %d session(s)", len(errs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyLsCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
}

// openHistory opens the configured persistent backend. The in-memory backend
// has nothing to inspect, so it falls back to the file backend.
func openHistory(cmd *cobra.Command) (history.Store, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, func() {}, err
	}
	if cfg.History.Backend == config.BackendMemory {
		cfg.History.Backend = config.BackendFile
	}

	store, closeStore, err := cli.OpenHistory(cmd.Context(), cfg.History, logging.NewNop())
	if err != nil {
		return nil, closeStore, fmt.Errorf("error opening history: %w", err)
	}
	return store, closeStore, nil
}
