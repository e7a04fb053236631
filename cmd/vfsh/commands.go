package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vfsh/internal/presentation/tui"
	"github.com/aretw0/vfsh/pkg/interpreter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the shell command reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := tui.CommandReference(interpreter.Commands())

		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		style, _ := cmd.Flags().GetString("style")
		render, err := tui.NewRenderer(style)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render reference: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	commandsCmd.Flags().String("style", "", "Glamour style (dark, light, notty); default auto")
}
