// Package config loads and merges scout configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SCOUT_PROVIDER, SCOUT_MODEL, SCOUT_LIMIT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/scout/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key in the config file.
package config
