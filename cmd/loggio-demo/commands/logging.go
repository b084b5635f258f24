package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xcollantes/loggio"
)

var loggingCmd = &cobra.Command{
	Use:   "logging",
	Short: "Demonstrate the message formatting pipeline",
	RunE:  runLogging,
}

func init() {
	rootCmd.AddCommand(loggingCmd)
}

func runLogging(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Hello, world!")

	// Truncating long messages.
	longMessage := "The path of the righteous man is beset on all sides by " +
		"the inequities of the selfish and the tyranny of evil men."
	log.Info("Show truncated message: %s", loggio.Str(longMessage))
	log.WithTruncateLength(100).Info(
		"Show truncated message with length specified: %s", loggio.Str(longMessage))
	log.WithTruncate(false).Info(
		"Show full message with no truncation: %s", loggio.Str(longMessage))

	// JSON rendering of arguments.
	payload := map[string]interface{}{"key": "value", "key2": "value2", "key3": "value3"}
	log.Info("Demo of json message with no format: %s", loggio.Any(payload))
	log.WithJSON(true).Info("Demo of json message with format: %s", loggio.Any(payload))

	// All severities.
	log.Debug("This is a debug message.")
	log.Warning("This is a warning message.")
	log.Error("This is an error message.")
	log.Critical("This is a critical message.")

	// User context prefixes the message with the uid.
	log.WithUserContext(map[string]interface{}{"uid": "1234567890"}).
		Info("See UID on the left.")

	// Instance-level defaults apply to every later call.
	if err := log.Reconfigure(loggio.WithTruncateLength(5)); err != nil {
		return err
	}
	log.Info("Hello, world!")
	if err := log.Reconfigure(loggio.WithTruncateLength(10000)); err != nil {
		return err
	}

	// A template/argument mismatch degrades instead of failing.
	log.Info("Count: %d", loggio.Str("not_a_number"))

	log.Info(strings.Repeat("A", 40))
	return nil
}
