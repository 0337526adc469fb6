package cmd

import (
	"strings"

	"beszelctl/internal/cli"
	"beszelctl/internal/hub"

	"github.com/spf13/cobra"
)

// Stats-specific flags
var (
	statsResolution string
	statsLimit      int
	statsOutput     string
	statsNoHeaders  bool
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <system-id>",
	Short: "Show stats history for a system",
	Long: `Show the stats history of a system at a chosen resolution, newest
first. The resolution selects the time-bucket granularity of the stored
records.

Examples:
  beszelctl stats abc123
  beszelctl stats abc123 --resolution 20m --limit 3
  beszelctl stats abc123 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsResolution, "resolution", "r", "1m", "Resolution ("+strings.Join(hub.Resolutions(), ", ")+")")
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "l", 10, "Number of records to show")
	registerOutputFlags(statsCmd, &statsOutput, &statsNoHeaders)
}

// statsColumns renders the embedded stats payload of each history record.
// The hub stores the metrics under short keys inside the "stats" field.
var statsColumns = []cli.Column{
	cli.TimeField("TIME", "created"),
	statField("CPU %", "cpu"),
	statField("MEM %", "mp"),
	statField("DISK %", "dp"),
	statBytesField("NET SENT/S", 0),
	statBytesField("NET RECV/S", 1),
}

// statField extracts one numeric metric from the embedded stats object.
func statField(header, key string) cli.Column {
	return cli.Column{Header: header, Value: func(r hub.Record) string {
		stats, ok := r["stats"].(map[string]interface{})
		if !ok {
			return "-"
		}
		if v, ok := stats[key].(float64); ok {
			return cli.FormatPercent(v)
		}
		return "-"
	}}
}

// statBytesField extracts one direction of the embedded bandwidth pair
// (index 0 = sent, 1 = received).
func statBytesField(header string, index int) cli.Column {
	return cli.Column{Header: header, Value: func(r hub.Record) string {
		stats, ok := r["stats"].(map[string]interface{})
		if !ok {
			return "-"
		}
		pair, ok := stats["b"].([]interface{})
		if !ok || index >= len(pair) {
			return "-"
		}
		if v, ok := pair[index].(float64); ok {
			return cli.FormatBytes(v) + "/s"
		}
		return "-"
	}}
}

func runStats(cmd *cobra.Command, args []string) error {
	resolution, err := hub.ParseResolution(statsResolution)
	if err != nil {
		return err
	}
	printer, err := newPrinter(statsOutput, statsNoHeaders)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var records []hub.Record
	err = withSpinner("Fetching stats", statsOutput, func() error {
		records, err = client.SystemStats(cmd.Context(), args[0], resolution, statsLimit)
		return err
	})
	if err != nil {
		return err
	}

	return printer.Records(statsColumns, records)
}
