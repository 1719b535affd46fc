package cli

// Short messages (one-liners)
const (
	MsgRootShort       = "Swap player identifiers across a server's worlds and plugins"
	MsgConvertShort    = "Rename identifiers in world and plugin folders"
	MsgUsercacheShort  = "Show the players recorded in usercache.json"
	MsgUUIDShort       = "Derive name-based UUIDs"
	MsgUUIDOffline     = "Print the offline-mode UUID for each player name"
	MsgUUIDBytes       = "Print the name-based UUID of an arbitrary string"
	MsgLookupShort     = "Resolve player names to online UUIDs"
	MsgPlayersShort    = "Build an identifier map from the user cache"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	MsgCancelled      = "No folder selected, nothing to do."
	MsgFolderQuestion = "Server folder"
)

// Long descriptions
const (
	MsgRootLong = `idswap rewrites player identifiers on disk. Given a map of old
identifiers to new ones (player names, offline UUIDs, online UUIDs), it
renames matching files and folders in every world and rewrites matching
text inside plugin data.`

	MsgConvertLong = `Convert scans the server root for conversion roots and applies the
identifier map to each of them.

Options select what is converted:
  world        every folder directly under the root holding a level.dat:
               file stems and directory names are renamed
  plugin_text  every folder under plugins/: names are renamed and text
               files are rewritten in place

The map is assembled from, in increasing precedence: --map file,
--from-usercache, and --set pairs. A root that fails is reported and the
remaining roots are still converted unless --strict is given.`

	MsgPlayersLong = `Players reads usercache.json, derives offline UUIDs locally, resolves
online UUIDs through the profile API when the direction needs them, and
prints the resulting identifier map. Players that cannot be resolved are
reported and left out.

Directions: name-to-online, name-to-offline, offline-to-online,
online-to-offline.`
)

// Examples
const (
	MsgConvertExample = `  # Rename offline UUIDs to online ones in every world
  idswap convert /srv/minecraft --from-usercache offline-to-online

  # Apply a map file to worlds and plugin data
  idswap convert /srv/minecraft -m uuids.toml -o world -o plugin_text

  # One-off pair
  idswap convert /srv/minecraft --set Steve=Alex`

	MsgPlayersExample = `  # Save an offline -> online map for later runs
  idswap players /srv/minecraft --direction offline-to-online --save uuids.toml`
)
