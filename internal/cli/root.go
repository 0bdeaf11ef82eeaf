// Package cli defines the cobra command tree for listing-composer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fjordhomes/listing-composer/internal/client"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flc",
		Short:         "Compose and publish property listings",
		Long:          "An interactive composer for property, service, resource and add-on listings. Walks through a step wizard, previews media, resolves locations to map coordinates, and submits the finished listing to the backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newComposeCmd(),
		newEditCmd(),
		newLocateCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the listings API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getAPIToken())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
