package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear saved credentials",
	Long: `Remove the stored hub URL and auth token.

Subsequent authenticated commands fail until the next login. Running
logout when nothing is stored is a no-op.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := newStore().Clear(); err != nil {
		return err
	}
	quietPrintf("Logged out - credentials cleared.\n")
	return nil
}
