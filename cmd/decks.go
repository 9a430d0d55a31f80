package cmd

import (
	"errors"
	"fmt"
	"os"

	"codeslides/config"
	"codeslides/slides"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var assumeYes bool

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List the available decks",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range slides.Names() {
			marker := " "
			if name == slides.Default() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-24s %d slides\n", marker, name, len(slides.MustLookup(name)))
		}
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the config directory, restoring default settings and keybindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if !assumeYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Remove %s", dir),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing removed")
					return nil
				}
				return fmt.Errorf("confirmation prompt: %w", err)
			}
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", dir)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(decksCmd, resetCmd)
}
