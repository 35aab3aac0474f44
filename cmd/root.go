// Package cmd implements the apstudio Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "apstudio",
	Short: "Build and preview AnnouncerPlus commands",
	Long: `apstudio - Build and preview AnnouncerPlus commands

Assemble /announcerplus commands from a persisted draft without memorising
their syntax, preview the MiniMessage formatting they carry, and keep a
history of the commands you copied.

The draft lives in the data directory and is edited with the draft
subcommands; every command reads it unless --state points elsewhere.

Examples:
  # Start a boss bar announcement
  apstudio draft set type=broadcastbossbar seconds=10 "text=<gold>Event soon"

  # Add a gradient at the end of the text
  apstudio draft insert gradient '#FF0000' '#00FF00'

  # See what it looks like
  apstudio preview

  # Copy it to the clipboard and record it in history
  apstudio copy

  # Bring back an older command
  apstudio history restore 3`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupEnv,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("apstudio version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $APSTUDIO_CONFIG or the user config dir)")
}
