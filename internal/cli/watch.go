package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saikumarmk/monash-handbook-plus/internal/icons"
)

// newWatchCmd creates the 'watch' command.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate icons whenever logo.png changes",
		Long: `Generate the icon set, then keep watching the public directory and
regenerate whenever logo.png is rewritten. Useful while iterating on the
logo. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolvePublicDir()
			if err != nil {
				return fmt.Errorf("failed to resolve public directory: %w", err)
			}

			gen := icons.NewGenerator(dir, GetLogger())
			ctx := GetContext()

			// Initial run so outputs exist before the first change
			if err := gen.Run(ctx); err != nil {
				return err
			}

			err = icons.NewWatcher(gen).Watch(ctx)
			if errors.Is(err, context.Canceled) {
				// Ctrl+C is the normal way to leave watch mode
				return nil
			}
			return err
		},
	}
}
