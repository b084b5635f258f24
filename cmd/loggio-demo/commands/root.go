// Package commands implements the loggio demo CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xcollantes/loggio"
	"github.com/xcollantes/loggio/core"
)

var rootCmd = &cobra.Command{
	Use:   "loggio-demo",
	Short: "Walk through the loggio logging features",
	Long: `loggio-demo exercises the loggio logging library: leveled colored
output, printf-style templates, JSON argument rendering, message
truncation, user-context prefixing, and timezone-aware timestamps.

Every flag can also be set through the environment with the LOGGIO
prefix, e.g. LOGGIO_TIMEZONE=Asia/Tokyo.`,
}

func init() {
	rootCmd.PersistentFlags().String("level", "INFO",
		"minimum severity: DEBUG, INFO, WARNING, ERROR, CRITICAL")
	rootCmd.PersistentFlags().String("file", "",
		"also append logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false,
		"disable ANSI colors")
	rootCmd.PersistentFlags().String("timezone", "",
		`IANA timezone for timestamps, e.g. "America/New_York"`)
	rootCmd.PersistentFlags().Int("truncate-length", 5000,
		"maximum message length before truncation")

	viper.SetEnvPrefix("LOGGIO")
	viper.AutomaticEnv()
	for _, name := range []string{"level", "file", "no-color", "timezone", "truncate-length"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// newLogger builds a Logger from the persistent flag/env configuration.
func newLogger() (*loggio.Logger, error) {
	cfg := loggio.DefaultConfig()
	cfg.Name = "loggio-demo"
	cfg.Level = core.ParseLevel(viper.GetString("level"))
	cfg.FileoutPath = viper.GetString("file")
	cfg.Timezone = viper.GetString("timezone")
	cfg.TruncateLength = viper.GetInt("truncate-length")
	cfg.UseColors = !viper.GetBool("no-color") && loggio.SupportsColor(os.Stderr)
	return loggio.New(cfg)
}
