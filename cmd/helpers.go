package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"beszelctl/internal/cli"
	"beszelctl/internal/config"
	"beszelctl/internal/hub"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newStore builds the credential store, honoring --config-dir.
func newStore() *config.Store {
	if rootConfigDir != "" {
		return config.NewStoreWithDir(rootConfigDir)
	}
	return config.NewStore()
}

// newClient resolves credentials and constructs a session client.
// A missing hub URL surfaces as ConfigError before any request.
func newClient() (*hub.Client, error) {
	creds, err := newStore().Load()
	if err != nil {
		return nil, err
	}
	return hub.NewClient(creds.URL, creds.Token)
}

// registerOutputFlags adds the output-format flags shared by every
// list-style command.
func registerOutputFlags(cmd *cobra.Command, format *string, noHeaders *bool) {
	cmd.Flags().StringVarP(format, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(noHeaders, "no-headers", false, "Suppress header row in table output")
}

// newPrinter builds a printer from the --output/--no-headers flag values.
func newPrinter(format string, noHeaders bool) (*cli.Printer, error) {
	parsed, err := cli.ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	p := cli.NewPrinter(parsed)
	p.NoHeaders = noHeaders
	return p, nil
}

// withSpinner runs fn behind a progress spinner. The spinner is skipped
// in quiet mode and for machine-readable output, where stray terminal
// writes would corrupt the stream.
func withSpinner(message, format string, fn func() error) error {
	if rootQuiet || cli.OutputFormat(format) != cli.FormatTable || !term.IsTerminal(int(os.Stderr.Fd())) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}

// confirm asks a yes/no question on stdin. Used by destructive commands
// unless --yes was passed.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// promptLine asks for one line of input, offering a default value.
func promptLine(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Printf("%s: ", prompt)
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
