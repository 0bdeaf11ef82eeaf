package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/media"
)

func newEditCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "edit <listing-id>",
		Short: "Edit an existing listing",
		Long:  "Fetches a listing from the backend, loads it into the step wizard, and submits the changes when finished.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args[0], typeFlag)
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "property", "listing type (property|service|resource|addon)")

	return cmd
}

func runEdit(id, typeFlag string) error {
	t := listing.Type(typeFlag)
	if !listing.ValidType(t) {
		return fmt.Errorf("unknown listing type %q (want property, service, resource or addon)", typeFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rec, err := newAPIClient().GetListing(ctx, id, t)
	if err != nil {
		return fmt.Errorf("fetching listing %s: %w", id, err)
	}

	draft := listing.Hydrate(rec)
	if draft.Type == "" {
		draft.Type = t
	}
	return runEditWizard(draft, rec)
}

// runEditWizard is runWizard plus seeding the media registry with the
// listing's already uploaded files.
func runEditWizard(draft *listing.Draft, rec *listing.Record) error {
	return runWizardWith(draft, func(reg *media.Registry) {
		if rec.DisplayImage != "" {
			reg.SetCoverRemote(rec.DisplayImage)
		}
		reg.SeedRemote(media.FieldDisplayImages, rec.DisplayImages)
		reg.SeedRemote(media.FieldFloorPlans, rec.FloorPlans)
		reg.SeedRemote(media.FieldSitePlans, rec.SitePlans)
		reg.SeedRemote(media.FieldDocumentation, rec.Documentation)
	})
}
