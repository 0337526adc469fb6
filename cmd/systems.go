package cmd

import (
	"beszelctl/internal/cli"
	"beszelctl/internal/hub"

	"github.com/spf13/cobra"
)

// Systems-specific flags
var (
	systemsFilter    string
	systemsOutput    string
	systemsNoHeaders bool

	systemUpdateName string
	systemUpdateHost string
	systemUpdatePort int

	systemDeleteYes bool
)

// systemsCmd represents the systems command group
var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Manage monitored systems",
}

// systemsListCmd represents the systems list command
var systemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored systems",
	Long: `List all monitored systems.

Examples:
  beszelctl systems list
  beszelctl systems list --filter 'status="up"'
  beszelctl systems list -o json`,
	RunE: runSystemsList,
}

// systemsGetCmd represents the systems get command
var systemsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one system",
	Args:  cobra.ExactArgs(1),
	RunE:  runSystemsGet,
}

// systemsUpdateCmd represents the systems update command
var systemsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a system's name, host, or port",
	Long: `Update a system. Only the supplied flags are sent; everything else is
left untouched server-side.

Examples:
  beszelctl systems update abc123 --name web-01
  beszelctl systems update abc123 --host 10.0.0.5 --port 45876`,
	Args: cobra.ExactArgs(1),
	RunE: runSystemsUpdate,
}

// systemsDeleteCmd represents the systems delete command
var systemsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a system",
	Args:  cobra.ExactArgs(1),
	RunE:  runSystemsDelete,
}

func init() {
	rootCmd.AddCommand(systemsCmd)
	systemsCmd.AddCommand(systemsListCmd)
	systemsCmd.AddCommand(systemsGetCmd)
	systemsCmd.AddCommand(systemsUpdateCmd)
	systemsCmd.AddCommand(systemsDeleteCmd)

	systemsListCmd.Flags().StringVarP(&systemsFilter, "filter", "f", "", "Backend filter expression")
	registerOutputFlags(systemsListCmd, &systemsOutput, &systemsNoHeaders)
	registerOutputFlags(systemsGetCmd, &systemsOutput, &systemsNoHeaders)

	systemsUpdateCmd.Flags().StringVar(&systemUpdateName, "name", "", "New name")
	systemsUpdateCmd.Flags().StringVar(&systemUpdateHost, "host", "", "New host")
	systemsUpdateCmd.Flags().IntVar(&systemUpdatePort, "port", 0, "New port")

	systemsDeleteCmd.Flags().BoolVarP(&systemDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

// systemColumns is the fixed column set for system listings.
var systemColumns = []cli.Column{
	cli.Field("ID", "id"),
	cli.Field("NAME", "name"),
	cli.Field("HOST", "host"),
	cli.Field("PORT", "port"),
	cli.StatusField("STATUS", "status"),
	cli.TimeField("UPDATED", "updated"),
}

func runSystemsList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(systemsOutput, systemsNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var systems []hub.Record
	err = withSpinner("Fetching systems", systemsOutput, func() error {
		systems, err = client.Systems(cmd.Context(), systemsFilter)
		return err
	})
	if err != nil {
		return err
	}

	return printer.Records(systemColumns, systems)
}

func runSystemsGet(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(systemsOutput, systemsNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	system, err := client.System(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printer.Record(system)
}

func runSystemsUpdate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	patch := hub.SystemPatch{}
	if cmd.Flags().Changed("name") {
		patch.Name = &systemUpdateName
	}
	if cmd.Flags().Changed("host") {
		patch.Host = &systemUpdateHost
	}
	if cmd.Flags().Changed("port") {
		patch.Port = &systemUpdatePort
	}

	system, err := client.UpdateSystem(cmd.Context(), args[0], patch)
	if err != nil {
		return err
	}

	quietPrintf("Updated system: %s\n", system.GetString("name"))
	return nil
}

func runSystemsDelete(cmd *cobra.Command, args []string) error {
	if !systemDeleteYes {
		ok, err := confirm("Are you sure you want to delete this system?")
		if err != nil {
			return err
		}
		if !ok {
			quietPrintf("Cancelled.\n")
			return nil
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.DeleteSystem(cmd.Context(), args[0]); err != nil {
		return err
	}

	quietPrintf("System deleted.\n")
	return nil
}
