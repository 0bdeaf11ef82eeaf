package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fjordhomes/listing-composer/internal/geocode"
)

func newLocateCmd() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "locate <query>",
		Short: "Resolve an address or map link to coordinates",
		Long:  "Resolves free-form address text, or a pasted map link containing coordinates, to latitude and longitude. Useful for checking what the wizard's map pin will do before composing.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(strings.Join(args, " "), country)
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two-letter country code to bias the search (e.g. gh)")

	return cmd
}

func runLocate(query, country string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	coords, err := geocode.NewClient().Resolve(ctx, query, country)
	if err == geocode.ErrNotFound {
		return fmt.Errorf("no match for %q", query)
	}
	if err != nil {
		return fmt.Errorf("resolving %q: %w", query, err)
	}

	if isJSON() {
		return printJSON(map[string]string{
			"latitude":  coords.LatString(),
			"longitude": coords.LonString(),
			"link":      geocode.ViewerLink(coords),
		})
	}

	fmt.Printf("Latitude:  %s\n", coords.LatString())
	fmt.Printf("Longitude: %s\n", coords.LonString())
	fmt.Printf("Map:       %s\n", geocode.ViewerLink(coords))
	return nil
}
