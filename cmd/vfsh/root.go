package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vfsh/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "vfsh [archive]",
	Short: "vfsh is a sandboxed shell over the contents of an archive",
	Long: `vfsh extracts an archive (zip, tar, tar.gz, tar.zst, tar.lz4) into a private
directory and opens a small shell (ls, cd, cat, chmod, tree) that can never
reach outside of it. Without an argument it opens filesystem.zip.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default .vfsh.yaml if present)")
	pf.Bool("debug", false, "Enable debug logging on stderr")
	pf.String("history", "", "History backend: memory, file or redis")
	pf.String("history-dir", "", "Directory for the file history backend")
	pf.String("redis-url", "", "Redis URL for the redis history backend")
}

// loadConfig resolves the configuration and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str("extract-dir", &cfg.ExtractDir)
	str("escape-policy", &cfg.EscapePolicy)
	str("prompt", &cfg.Prompt)
	str("metrics-file", &cfg.MetricsFile)
	str("history", &cfg.History.Backend)
	str("history-dir", &cfg.History.Dir)
	str("redis-url", &cfg.History.RedisURL)

	if flags.Changed("keep") {
		cfg.Keep, _ = flags.GetBool("keep")
	}
	if flags.Changed("no-hints") {
		noHints, _ := flags.GetBool("no-hints")
		cfg.Hints = !noHints
	}
}
