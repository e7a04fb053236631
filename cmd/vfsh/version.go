package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/vfsh"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vfsh",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vfsh version %s\n", strings.TrimSpace(vfsh.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
