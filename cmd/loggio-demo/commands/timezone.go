package commands

import (
	"github.com/spf13/cobra"

	"github.com/xcollantes/loggio"
)

var timezoneCmd = &cobra.Command{
	Use:   "timezone",
	Short: "Demonstrate timezone-aware timestamps",
	RunE:  runTimezone,
}

func init() {
	rootCmd.AddCommand(timezoneCmd)
}

var demoZones = []string{
	"UTC",
	"US/Pacific",
	"Europe/London",
	"Asia/Tokyo",
	"Australia/Sydney",
	"America/New_York",
}

func runTimezone(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("This log uses the local timezone")

	for _, zone := range demoZones {
		if err := log.Reconfigure(loggio.WithTimezone(zone)); err != nil {
			return err
		}
		log.Info("This log uses the %s timezone", loggio.Str(zone))
	}

	// An invalid zone warns once and falls back to local time.
	if err := log.Reconfigure(loggio.WithTimezone("Invalid/Timezone")); err != nil {
		return err
	}
	log.Info("First log after configuring an invalid timezone")
	log.Info("Second log: no further warning, still local time")

	return nil
}
