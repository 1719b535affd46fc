package cli

import (
	"os"
	"strings"

	"github.com/arthur-debert/idswap/pkg/convert"
	"github.com/arthur-debert/idswap/pkg/dialog"
	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/mapfile"
	"github.com/arthur-debert/idswap/pkg/players"
	"github.com/arthur-debert/idswap/pkg/scan"
	"github.com/arthur-debert/idswap/pkg/usercache"
	"github.com/spf13/cobra"
)

func newConvertCmd(g *globals) *cobra.Command {
	var (
		options       []string
		mapFile       string
		sets          []string
		fromUsercache string
		strict        bool
	)

	cmd := &cobra.Command{
		Use:     "convert [root]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.convert")

			root, err := resolveRoot(g, args)
			if err != nil {
				return err
			}
			if root == "" {
				r, err := g.renderer(cmd)
				if err != nil {
					return err
				}
				return r.RenderMessage(MsgCancelled)
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("option") {
				overrides["convert.options"] = options
			}
			if cmd.Flags().Changed("strict") {
				overrides["convert.strict"] = strict
			}
			cfg, err := g.loadConfig(root, overrides)
			if err != nil {
				return err
			}

			m, err := buildConvertMap(g, root, mapFile, fromUsercache, sets)
			if err != nil {
				return err
			}

			logger.Info().
				Str("root", root).
				Strs("options", cfg.Convert.Options).
				Int("identifiers", m.Len()).
				Bool("strict", cfg.Convert.Strict).
				Msg("Starting conversion")

			result, err := convert.Convert(g.fs, convert.Request{
				RootDir: root,
				Options: cfg.Convert.Options,
				Uuids:   m,
				Strict:  cfg.Convert.Strict,
				Layout:  scan.Layout{WorldMarker: cfg.Scan.Marker, PluginsDir: cfg.Scan.Plugins},
			})
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}

	cmd.Flags().StringSliceVarP(&options, "option", "o", nil, "Conversion option: world, plugin_text (repeatable)")
	cmd.Flags().StringVarP(&mapFile, "map", "m", "", "Identifier map file (.toml, .yaml, .yml, .json)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Map one identifier: old=new (repeatable)")
	cmd.Flags().StringVar(&fromUsercache, "from-usercache", "", "Build the map from usercache.json in this direction")
	cmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first failing root")

	return cmd
}

// resolveRoot takes the root from args, or asks for one when stdin is a
// terminal. An empty result means the user cancelled.
func resolveRoot(g *globals, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !isTerminal(os.Stdin) {
		return "", errors.New(errors.ErrInvalidInput, "a server root is required")
	}
	return dialog.OpenDir(g.fs, dialog.PtermPrompter{}, MsgFolderQuestion)
}

// buildConvertMap merges every map source. Later sources win on
// conflicting keys: map file, then user cache, then --set pairs.
func buildConvertMap(g *globals, root, mapFile, direction string, sets []string) (*idmap.Map, error) {
	pairs := map[string]string{}

	if mapFile != "" {
		m, err := mapfile.Load(g.fs, mapFile)
		if err != nil {
			return nil, err
		}
		for k, v := range m.Pairs() {
			pairs[k] = v
		}
	}

	if direction != "" {
		m, _, err := mapFromUsercache(g, root, direction)
		if err != nil {
			return nil, err
		}
		for k, v := range m.Pairs() {
			pairs[k] = v
		}
	}

	for _, s := range sets {
		old, repl, ok := strings.Cut(s, "=")
		if !ok || old == "" || repl == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid --set %q, want old=new", s).
				WithDetail("value", s)
		}
		pairs[old] = repl
	}

	if len(pairs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no identifiers to convert: use --map, --from-usercache or --set")
	}
	return idmap.New(pairs)
}

// mapFromUsercache reads the user cache under root, resolves online UUIDs
// when direction needs them, and builds the map. Unresolved players are
// logged and returned.
func mapFromUsercache(g *globals, root, direction string) (*idmap.Map, []players.PlayerData, error) {
	logger := logging.GetLogger("cli.players")

	d, err := players.ParseDirection(direction)
	if err != nil {
		return nil, nil, err
	}

	entries, err := usercache.Read(g.fs, root)
	if err != nil {
		return nil, nil, err
	}
	list := players.FromUsercache(entries)

	if d.NeedsOnline() {
		if err := players.Resolve(list, g.client()); err != nil {
			return nil, nil, err
		}
	}

	m, unresolved, err := players.BuildMap(list, d)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range unresolved {
		logger.Warn().Str("player", p.Name).Msg("No online profile, player left out of the map")
	}
	return m, unresolved, nil
}
