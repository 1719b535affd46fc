// Package config handles configuration management for idswap.
// It layers embedded TOML defaults, the user config file, the
// per-root .idswap.toml, IDSWAP_* environment variables and
// command-line overrides, in that order.
package config
