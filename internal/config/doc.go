// Package config provides configuration loading, merging, and validation
// facilities for the agent and the front end.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (agent only)
//  2. Environment variables (GOPASS_ prefix)
//  3. JSON config file ($XDG_CONFIG_HOME/gopass/config.json by default)
//  4. Built-in defaults
//
// The main entry points are [GetAgentConfig] and [GetCLIConfig]. The JSON
// file is edited through [FileConfig].
package config
