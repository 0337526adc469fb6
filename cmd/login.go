package cmd

import (
	"beszelctl/internal/config"
	"beszelctl/internal/hub"

	"github.com/spf13/cobra"
)

// Login-specific flags
var (
	loginURL      string
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate to a Beszel hub and save credentials",
	Long: `Authenticate to a Beszel hub with email and password.

On success the hub URL and the returned auth token are written to the
credential file with owner-only permissions. Missing values are prompted
for interactively; the password prompt never echoes.

Examples:
  beszelctl login                                  # Interactive
  beszelctl login --url https://hub.example -e me@example.com`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginURL, "url", "", "Beszel hub URL (e.g. https://beszel.example.com)")
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	store := newStore()

	// Read the file directly: an env override must never end up persisted.
	persisted, err := store.LoadFile()
	if err != nil {
		return err
	}

	url := loginURL
	if url == "" {
		url, err = promptLine("Beszel URL", persisted.URL)
		if err != nil {
			return err
		}
	}

	email := loginEmail
	if email == "" {
		email, err = promptLine("Email", "")
		if err != nil {
			return err
		}
	}

	password := loginPassword
	if password == "" {
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}

	client, err := hub.NewClient(url, "")
	if err != nil {
		return err
	}

	token, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		// Nothing is saved on a failed login; the credential file is
		// left exactly as it was.
		return err
	}

	if err := store.Save(config.Credentials{URL: url, Token: token}); err != nil {
		return err
	}

	path, _ := store.Path()
	quietPrintf("Login successful.\n")
	quietPrintf("Credentials saved to %s\n", path)
	return nil
}
