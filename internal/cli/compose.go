package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjordhomes/listing-composer/internal/listing"
	"github.com/fjordhomes/listing-composer/internal/logging"
	"github.com/fjordhomes/listing-composer/internal/media"
	"github.com/fjordhomes/listing-composer/internal/submit"
	"github.com/fjordhomes/listing-composer/internal/tui"
)

func newComposeCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a new listing",
		Long:  "Starts the step wizard for a new listing of the given type and submits it when finished.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(typeFlag)
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "property", "listing type (property|service|resource|addon)")

	return cmd
}

func runCompose(typeFlag string) error {
	t := listing.Type(typeFlag)
	if !listing.ValidType(t) {
		return fmt.Errorf("unknown listing type %q (want property, service, resource or addon)", typeFlag)
	}

	draft := listing.New(t)
	return runWizard(draft)
}

// runWizard sets up media previews, logging and the submission pipeline,
// then hands the draft to the terminal wizard. Shared by compose and edit.
func runWizard(draft *listing.Draft) error {
	return runWizardWith(draft, nil)
}

func runWizardWith(draft *listing.Draft, seed func(*media.Registry)) error {
	logPath, err := logFilePath()
	if err != nil {
		return err
	}
	logFile, err := logging.SetupFile(false, logPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	previewer, err := media.NewTempPreviewer()
	if err != nil {
		return fmt.Errorf("setting up previews: %w", err)
	}
	defer previewer.Close()

	registry := media.NewRegistry(previewer)
	defer registry.Close()
	if seed != nil {
		seed(registry)
	}

	pipeline := submit.New(newAPIClient())

	outcome, err := tui.Run(draft, registry, pipeline)
	if err != nil {
		return err
	}

	switch {
	case outcome == nil || !outcome.Submitted:
		fmt.Println("Listing discarded.")
	case outcome.Created:
		fmt.Println("✓ Listing created.")
	default:
		fmt.Println("✓ Listing updated.")
	}
	return nil
}
