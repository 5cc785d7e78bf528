package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brokerctl",
	Short: "Manage and browse a brokerage listing inventory from the terminal",
	Long: `brokerctl is a terminal front end for a real-estate brokerage's listing
inventory. It renders listings as a configurable table with per-column
visibility and ordering, quick filters over price, bedrooms, status and
location, and inline editing of listing statuses.

Column layout changes are persisted to a device-local preference store and
shared by every table in the application.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, unreadable data files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "brokerctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
