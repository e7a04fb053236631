package main

import (
	"os"

	"github.com/aretw0/vfsh/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [archive]",
	Short: "Open an interactive shell over an archive",
	Long:  `Extracts the archive into a sandbox and starts the shell. Input may be piped for scripted use.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Archive = args[0]
		}

		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			Config:      cfg,
			Debug:       debug,
			JSON:        jsonMode,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			In:          os.Stdin,
			Out:         os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		f := c.Flags()
		f.String("extract-dir", "", "Extract into this directory instead of a temporary one")
		f.Bool("keep", false, "Keep the extracted sandbox after exit")
		f.Bool("no-hints", false, "Do not print help lines after commands")
		f.String("escape-policy", "", "How '..' above the root is handled: clamp or reject")
		f.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
		f.String("prompt", "", "Prompt template; {cwd} is the current directory")
		f.Bool("json", false, "Read lines and write results as JSON Lines")
	}

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
}
