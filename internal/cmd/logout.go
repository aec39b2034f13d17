package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("session cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
