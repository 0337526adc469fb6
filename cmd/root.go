package cmd

import (
	"errors"
	"fmt"
	"os"

	"beszelctl/internal/hub"
	"beszelctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. The error kind is always distinguishable
// from the exit code for scripting and automation.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general or backend-reported error.
	ExitCodeError = 1
	// ExitCodeAuth indicates a missing, rejected, or expired credential.
	ExitCodeAuth = 2
	// ExitCodeConfig indicates a missing or invalid hub URL.
	ExitCodeConfig = 3
	// ExitCodeValidation indicates locally detectable bad input.
	ExitCodeValidation = 4
	// ExitCodeNotFound indicates the hub reports no such resource.
	ExitCodeNotFound = 5
	// ExitCodeNetwork indicates the hub could not be reached.
	ExitCodeNetwork = 6
	// ExitCodePersistence indicates the credential file could not be
	// read or written.
	ExitCodePersistence = 7
)

// Global flags shared by every command.
var (
	rootConfigDir string
	rootQuiet     bool
	rootDebug     bool
)

// rootCmd represents the base command for the beszelctl application.
var rootCmd = &cobra.Command{
	Use:   "beszelctl",
	Short: "Manage a Beszel monitoring hub from the command line",
	Long: `beszelctl talks to a Beszel monitoring hub: list and inspect monitored
systems, browse stats history and container snapshots, manage alerts, and
reach arbitrary hub collections with filter, sort, and expansion
parameters.

Run 'beszelctl login' once to store the hub URL and auth token; the
BESZEL_URL and BESZEL_TOKEN environment variables override the stored
values for a single invocation.`,
	// SilenceUsage prevents cobra from printing the usage message on errors
	// handled by the application, keeping error output clean.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command. Called from main with
// the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "beszelctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps the error taxonomy onto semantic exit codes.
func getExitCode(err error) int {
	var authErr *hub.AuthError
	if errors.As(err, &authErr) {
		return ExitCodeAuth
	}
	var configErr *hub.ConfigError
	if errors.As(err, &configErr) {
		return ExitCodeConfig
	}
	var validationErr *hub.ValidationError
	if errors.As(err, &validationErr) {
		return ExitCodeValidation
	}
	var notFoundErr *hub.NotFoundError
	if errors.As(err, &notFoundErr) {
		return ExitCodeNotFound
	}
	var networkErr *hub.NetworkError
	if errors.As(err, &networkErr) {
		return ExitCodeNetwork
	}
	var persistenceErr *hub.PersistenceError
	if errors.As(err, &persistenceErr) {
		return ExitCodePersistence
	}
	return ExitCodeError
}

// quietPrintf prints output only when --quiet is not set. Use for
// progress messages and other non-essential output.
func quietPrintf(format string, args ...interface{}) {
	if !rootQuiet {
		fmt.Printf(format, args...)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigDir, "config-dir", "", "Credential directory (default ~/.config/beszelctl)")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging of hub requests")
}
