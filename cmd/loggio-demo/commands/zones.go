package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xcollantes/loggio"
)

var zonesContains string

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the IANA timezones available on this system",
	RunE:  runZones,
}

func init() {
	zonesCmd.Flags().StringVar(&zonesContains, "contains", "",
		"only list zones whose name contains this substring")
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	zones := loggio.AvailableTimezones()
	if len(zones) == 0 {
		return fmt.Errorf("no zoneinfo database found on this system")
	}

	shown := 0
	for _, zone := range zones {
		if zonesContains != "" && !strings.Contains(zone, zonesContains) {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), zone)
		shown++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d zones\n", shown)
	return nil
}
