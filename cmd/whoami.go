package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity associated with the current token",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	identity, err := client.Whoami(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Email:  %s\n", identity.GetString("email"))
	if name := identity.GetString("name"); name != "" {
		fmt.Printf("Name:   %s\n", name)
	}
	fmt.Printf("ID:     %s\n", identity.ID())
	if role := identity.GetString("role"); role != "" {
		fmt.Printf("Role:   %s\n", role)
	}
	fmt.Printf("Hub:    %s\n", client.BaseURL())
	return nil
}
