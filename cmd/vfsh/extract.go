package main

import (
	"github.com/aretw0/vfsh/internal/cli"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive> <dir>",
	Short: "Extract an archive with the sandbox rules, without opening a shell",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.ExtractArchive(cmd.Context(), args[0], args[1], debug, cfg.Log, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
