package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/LiteObject/WindowsUtils/internal/version"
)

// newManCmd generates the man page. Hidden: packaging scripts call it,
// users don't.
func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate the man page",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "FONTINSTALL",
				Section: "1",
				Source:  "fontinstall " + version.Version,
				Manual:  "fontinstall manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
