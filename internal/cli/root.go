// Package cli wires the idswap commands.
package cli

import (
	"embed"
	"os"

	"github.com/arthur-debert/idswap/internal/version"
	"github.com/arthur-debert/idswap/pkg/cobrax/topics"
	"github.com/arthur-debert/idswap/pkg/config"
	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/mojang"
	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/arthur-debert/idswap/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// globals holds the persistent flags and the state shared by subcommands
type globals struct {
	verbosity int
	format    string

	fs  types.FS
	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globals{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "idswap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// User and env layers only; commands with a root reload with it
			cfg, err := g.loadConfig("", nil)
			if err != nil {
				logging.SetupLogger(g.verbosity, logging.DefaultRotation)
				return err
			}
			logging.SetupLogger(g.verbosity, logging.Rotation{
				MaxSize:    cfg.Log.Size,
				MaxBackups: cfg.Log.Backups,
				MaxAge:     cfg.Log.Age,
				Compress:   cfg.Log.Compress,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "", "Output format: auto, term, text, json, yaml")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newConvertCmd(g))
	rootCmd.AddCommand(newUsercacheCmd(g))
	rootCmd.AddCommand(newUUIDCmd(g))
	rootCmd.AddCommand(newLookupCmd(g))
	rootCmd.AddCommand(newPlayersCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	var renderer topics.Renderer = topics.PlainRenderer{}
	if isTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	if tm, err := topics.Load(helpFS, "help", topics.Options{Renderer: renderer}); err == nil {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// loadConfig loads the layered configuration for rootDir. The --format
// flag, when given, overrides output.format.
func (g *globals) loadConfig(rootDir string, overrides map[string]interface{}) (*config.Config, error) {
	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if g.format != "" {
		overrides["output.format"] = g.format
	}

	cfg, err := config.Load(rootDir, overrides)
	if err != nil {
		return nil, err
	}
	g.cfg = cfg
	return cfg, nil
}

// renderer builds the renderer for the loaded output format
func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// client builds a profile API client from the loaded configuration
func (g *globals) client() *mojang.Client {
	return mojang.NewClient(g.cfg.HTTP.API, g.cfg.HTTP.Timeout)
}
