package cli

import (
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/mapfile"
	"github.com/arthur-debert/idswap/pkg/players"
	"github.com/arthur-debert/idswap/pkg/ui"
	"github.com/arthur-debert/idswap/pkg/usercache"
	"github.com/arthur-debert/idswap/pkg/uuidgen"
	"github.com/spf13/cobra"
)

// rootArg returns the optional root argument, defaulting to the working directory
func rootArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}

func newUsercacheCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "usercache [root]",
		Short: MsgUsercacheShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := usercache.Read(g.fs, rootArg(args))
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(entries)
		},
	}
}

func newUUIDCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: MsgUUIDShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "offline <name>...",
		Short: MsgUUIDOffline,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make(map[string]string, len(args))
			for _, name := range args {
				pairs[name] = uuidgen.OfflinePlayerUUID(name)
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(ui.Mapping{From: "Name", To: "Offline UUID", Pairs: pairs})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bytes <string>",
		Short: MsgUUIDBytes,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(uuidgen.NameUUIDFromString(args[0]))
		},
	})

	return cmd
}

func newLookupCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>...",
		Short: MsgLookupShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.lookup")
			client := g.client()

			var found map[string]string
			if len(args) == 1 {
				id, err := client.LookupUUID(args[0])
				if err != nil {
					return err
				}
				found = map[string]string{args[0]: id}
			} else {
				var err error
				if found, err = client.LookupUUIDs(args); err != nil {
					return err
				}
				for _, name := range args {
					if _, ok := found[name]; !ok {
						logger.Warn().Str("player", name).Msg("No online profile")
					}
				}
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(ui.Mapping{From: "Name", To: "Online UUID", Pairs: found})
		},
	}
}

func newPlayersCmd(g *globals) *cobra.Command {
	var (
		direction string
		save      string
	)

	cmd := &cobra.Command{
		Use:     "players [root]",
		Short:   MsgPlayersShort,
		Long:    MsgPlayersLong,
		Example: MsgPlayersExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			if _, err := g.loadConfig(root, nil); err != nil {
				return err
			}

			m, _, err := mapFromUsercache(g, root, direction)
			if err != nil {
				return err
			}

			if save != "" {
				if err := mapfile.Save(g.fs, save, m); err != nil {
					return err
				}
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			d, _ := players.ParseDirection(direction)
			from, to := directionLabels(d)
			return r.RenderResult(ui.Mapping{From: from, To: to, Pairs: m.Pairs()})
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", string(players.OfflineToOnline), "Map direction")
	cmd.Flags().StringVar(&save, "save", "", "Write the map to this file")

	return cmd
}

func directionLabels(d players.Direction) (string, string) {
	switch d {
	case players.NameToOnline:
		return "Name", "Online UUID"
	case players.NameToOffline:
		return "Name", "Offline UUID"
	case players.OnlineToOffline:
		return "Online UUID", "Offline UUID"
	default:
		return "Offline UUID", "Online UUID"
	}
}
