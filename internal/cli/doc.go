// Package cli wires the cobra command tree: analyze, config, models, and
// version. Command handlers convert domain errors into deterministic exit
// codes; an invalid project path terminates before any chat interaction.
package cli
