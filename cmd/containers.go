package cmd

import (
	"beszelctl/internal/hub"

	"github.com/spf13/cobra"
)

// Containers-specific flags
var (
	containersOutput    string
	containersNoHeaders bool
)

// containersCmd represents the containers command
var containersCmd = &cobra.Command{
	Use:   "containers <system-id>",
	Short: "List containers running on a system",
	Long: `List the container snapshot for a system, taken from the newest
container stats record. A system reporting no containers yields an empty
listing.

Examples:
  beszelctl containers abc123
  beszelctl containers abc123 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runContainers,
}

func init() {
	rootCmd.AddCommand(containersCmd)
	registerOutputFlags(containersCmd, &containersOutput, &containersNoHeaders)
}

func runContainers(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(containersOutput, containersNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var containers []hub.Record
	err = withSpinner("Fetching containers", containersOutput, func() error {
		containers, err = client.Containers(cmd.Context(), args[0])
		return err
	})
	if err != nil {
		return err
	}

	// Container entries are hub-shaped with no fixed schema; derive the
	// columns from what the agent reported.
	return printer.Records(nil, containers)
}
