package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the flc build version, set at release time via -ldflags.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isJSON() {
				return printJSON(map[string]string{"version": Version})
			}
			fmt.Println("flc " + Version)
			return nil
		},
	}
}
