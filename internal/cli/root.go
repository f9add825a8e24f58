// Package cli provides the command-line interface for icongen.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saikumarmk/monash-handbook-plus/internal/icons"
	"github.com/saikumarmk/monash-handbook-plus/internal/logging"
	"github.com/saikumarmk/monash-handbook-plus/internal/pathutil"
	"github.com/saikumarmk/monash-handbook-plus/internal/version"
)

var (
	// Global flags
	publicDir string
	verbose   bool
	debug     bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command. Running it with no arguments
// generates the icon set once, which keeps the tool's original
// zero-argument invocation working.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "icongen",
		Short: "Generate PWA icons from logo.png",
		Long: `icongen ` + version.Version + ` - Built: ` + version.BuildTime + `
Generates the web app's installable-app icon set (manifest icons,
apple-touch-icon, favicon) from public/logo.png.

With no arguments the icon set is generated once. Use 'watch' to keep
regenerating whenever the logo changes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			logger = logging.NewDefaultCLILogger()
			if verbose || debug {
				logging.SetGlobalLevel(-1) // Debug level (zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}

	// Global flags. Icon sizes, output names, and the background color are
	// compile-time constants; only the directory and verbosity move.
	rootCmd.PersistentFlags().StringVar(&publicDir, "public-dir", "", "Public assets directory (default: <bindir>/../public)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	// Create a context that can be cancelled by signals
	rootContext, cancelFunc = context.WithCancel(context.Background())

	// Set up signal handling for graceful cancellation
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			// When the channel is closed sig is nil and the loop exits
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, stopping...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newWatchCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
// This context will be cancelled when the user presses Ctrl+C.
func GetContext() context.Context {
	if rootContext == nil {
		// Fallback to background context if called before Execute()
		return context.Background()
	}
	return rootContext
}

// resolvePublicDir returns the directory icons are read from and written
// to: the --public-dir flag when set, otherwise the executable-relative
// default.
func resolvePublicDir() (string, error) {
	if publicDir != "" {
		return pathutil.ResolveAbsolutePath(publicDir)
	}
	return pathutil.DefaultPublicDir(), nil
}

// runGenerate is the shared implementation behind the root command and the
// 'generate' subcommand.
func runGenerate() error {
	dir, err := resolvePublicDir()
	if err != nil {
		return fmt.Errorf("failed to resolve public directory: %w", err)
	}

	gen := icons.NewGenerator(dir, GetLogger())
	return gen.Run(GetContext())
}
