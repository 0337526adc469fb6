package cmd

import (
	"fmt"
	"strings"

	"beszelctl/internal/hub"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the stored hub configuration",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored configuration",
	RunE:  runConfigShow,
}

// configSetURLCmd represents the config set-url command
var configSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Set the Beszel hub URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetURL,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetURLCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	store := newStore()

	path, err := store.Path()
	if err != nil {
		return err
	}
	creds, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s\n", path)
	if creds.URL != "" {
		fmt.Printf("URL:         %s\n", creds.URL)
	} else {
		fmt.Printf("URL:         %s\n", text.FgHiBlack.Sprint("not set"))
	}
	if creds.Token != "" {
		fmt.Printf("Token:       %s\n", truncateToken(creds.Token))
	} else {
		fmt.Printf("Token:       %s\n", text.FgHiBlack.Sprint("not set"))
	}
	return nil
}

// truncateToken shows just enough of the token to recognize it without
// disclosing the whole credential. Tokens too short to truncate are
// masked entirely.
func truncateToken(token string) string {
	const visible = 20
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return token[:visible] + "..."
}

func runConfigSetURL(cmd *cobra.Command, args []string) error {
	url := args[0]
	store := newStore()

	// Read the file directly so env overrides never get persisted.
	creds, err := store.LoadFile()
	if err != nil {
		return err
	}

	// Validate before writing; NewClient rejects unparseable URLs.
	if _, err := hub.NewClient(url, ""); err != nil {
		return err
	}

	creds.URL = url
	if err := store.Save(creds); err != nil {
		return err
	}

	quietPrintf("URL set to %s\n", url)
	return nil
}
