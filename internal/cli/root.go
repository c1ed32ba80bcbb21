package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

const configKey ctxKey = 1

// configFromContext retrieves the loaded configuration from ctx,
// falling back to the built-in defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

// Execute runs the agptool CLI and returns an error if any command
// fails. The root command wires up all subcommands, configures logging
// based on the --verbose flag, loads the optional agptool.toml, and
// attaches both to the command context.
func Execute() error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:           "agptool",
		Short:         "agptool manipulates AGP assembly layout files",
		Long:          `agptool is a toolkit for AGP genome assembly layouts: split objects at gaps or inside components, join them into superscaffolds, reverse-complement ranges, lift BED coordinates between assembly levels, compose layered AGPs, and build or clean the corresponding FASTA.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			ctx = context.WithValue(ctx, configKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("agptool %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", configFile, "path to agptool.toml")

	root.AddCommand(newSplitCmd())
	root.AddCommand(newJoinCmd())
	root.AddCommand(newFlipCmd())
	root.AddCommand(newTransformCmd())
	root.AddCommand(newComposeCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newRenameCmd())
	root.AddCommand(newAssembleCmd())
	root.AddCommand(newSanitizeCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVizCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		printError("%v", err)
		return err
	}
	return nil
}
