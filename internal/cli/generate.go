package cli

import (
	"github.com/spf13/cobra"
)

// newGenerateCmd creates the 'generate' command, the explicit form of the
// zero-argument default action.
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the icon set once",
		Long: `Generate all icon assets from public/logo.png.

Produces, in the public directory:
  icon-192.png          192x192   manifest icon
  icon-512.png          512x512   manifest icon
  apple-touch-icon.png  180x180   iOS home screen
  favicon.png           32x32     browser tab

Each icon is the logo scaled to fit (aspect ratio preserved), centered
over the app's navy background. Existing files are overwritten.

If public/logo.png does not exist, a message is printed and no files are
written; this is not treated as a failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}
}
