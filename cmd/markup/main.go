// Command markup renders HTML elements, void elements and attribute strings from the command line, strips tags from
// text, and can serve the same operations over HTTP.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg(``)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Render HTML fragments from tag names, attributes and content",
		Long: `markup renders HTML fragments without a template engine.

Attributes are given as a JSON or YAML object; nested objects become hyphenated attribute families, true becomes a
bare attribute and false omits the attribute:

  markup element a --attrs '{"href": "#nerds", "data": {"toggle": true}}' --content 'Nerds!'
  <a href="#nerds" data-toggle>Nerds!</a>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
			zerolog.DefaultContextLogger = &log.Logger
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	cmd.AddCommand(
		elementCmd(),
		voidCmd(),
		attrsCmd(),
		sanitizeCmd(),
		tagsCmd(),
		unpkgCmd(),
		serveCmd(),
		versionCmd(),
	)
	return cmd
}
