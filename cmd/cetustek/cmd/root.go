package cmd

import (
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "cetustek",
	Short: "HTTP facade for the Cetustek e-invoice service",
	Long: `cetustek runs a JSON HTTP facade in front of Taiwan's Cetustek
e-invoice web service, backed by the cetustek-go client library.

Credentials come from the environment (or a .env file):
  CETUSTEK_RENT_ID, CETUSTEK_SITE_CODE, CETUSTEK_API_PASSWORD

Examples:
  # Start the facade on the default port
  cetustek serve

  # Start on a custom port in debug mode
  cetustek serve --address :9090 --debug`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}
