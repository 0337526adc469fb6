package cmd

import (
	"beszelctl/internal/cli"
	"beszelctl/internal/hub"

	"github.com/spf13/cobra"
)

// Alerts-specific flags
var (
	alertsSystem    string
	alertsOutput    string
	alertsNoHeaders bool

	alertDeleteYes bool

	alertHistoryLimit int
)

// alertsCmd represents the alerts command group
var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Manage alerts and browse alert history",
}

// alertsListCmd represents the alerts list command
var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured alerts",
	Long: `List configured alerts, optionally restricted to one system.

Examples:
  beszelctl alerts list
  beszelctl alerts list --system abc123`,
	RunE: runAlertsList,
}

// alertsDeleteCmd represents the alerts delete command
var alertsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an alert",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertsDelete,
}

// alertsHistoryCmd represents the alerts history command
var alertsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show triggered-alert history",
	RunE:  runAlertsHistory,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsListCmd)
	alertsCmd.AddCommand(alertsDeleteCmd)
	alertsCmd.AddCommand(alertsHistoryCmd)

	alertsListCmd.Flags().StringVarP(&alertsSystem, "system", "s", "", "Restrict to one system ID")
	registerOutputFlags(alertsListCmd, &alertsOutput, &alertsNoHeaders)

	alertsDeleteCmd.Flags().BoolVarP(&alertDeleteYes, "yes", "y", false, "Skip confirmation prompt")

	alertsHistoryCmd.Flags().IntVarP(&alertHistoryLimit, "limit", "l", 50, "Number of records to show")
	registerOutputFlags(alertsHistoryCmd, &alertsOutput, &alertsNoHeaders)
}

// alertColumns is the fixed column set for alert listings. The system
// name comes from the expanded relation when available.
var alertColumns = []cli.Column{
	cli.Field("ID", "id"),
	{Header: "SYSTEM", Value: func(r hub.Record) string {
		if system := r.Expanded("system"); system != nil {
			if name := system.GetString("name"); name != "" {
				return name
			}
		}
		return r.GetString("system")
	}},
	cli.Field("NAME", "name"),
	cli.Field("VALUE", "value"),
	cli.Field("TRIGGERED", "triggered"),
}

// alertHistoryColumns is the fixed column set for history listings.
var alertHistoryColumns = []cli.Column{
	cli.Field("ID", "id"),
	cli.TimeField("CREATED", "created"),
	cli.Field("NAME", "name"),
	cli.Field("SYSTEM", "system"),
	cli.Field("VALUE", "value"),
}

func runAlertsList(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(alertsOutput, alertsNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var alerts []hub.Record
	err = withSpinner("Fetching alerts", alertsOutput, func() error {
		alerts, err = client.Alerts(cmd.Context(), alertsSystem)
		return err
	})
	if err != nil {
		return err
	}

	return printer.Records(alertColumns, alerts)
}

func runAlertsDelete(cmd *cobra.Command, args []string) error {
	if !alertDeleteYes {
		ok, err := confirm("Are you sure you want to delete this alert?")
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
	if err := client.DeleteAlert(cmd.Context(), args[0]); err != nil {
		return err
	}

	quietPrintf("Alert deleted.\n")
	return nil
}

func runAlertsHistory(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(alertsOutput, alertsNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var history []hub.Record
	err = withSpinner("Fetching alert history", alertsOutput, func() error {
		history, err = client.AlertHistory(cmd.Context(), alertHistoryLimit)
		return err
	})
	if err != nil {
		return err
	}

	return printer.Records(alertHistoryColumns, history)
}
