// Package config loads pavsca settings.
//
// Settings are described by an embedded CUE schema whose defaults apply when
// a field is omitted. A user file is unified with the closed #Config
// definition, validated as concrete, and decoded into Config.
//
// Precedence is applied by callers: command-line flags override the file,
// which overrides the schema defaults.
package config
