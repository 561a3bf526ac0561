// Package config produces the immutable configuration value that every
// resolver and renderer call receives. Built-in defaults, the user's
// config.yaml, JNEW_* environment variables, and caller overrides are merged
// by viper, leaf key by leaf key, so an override of one template keeps the
// defaults for all others. Config files are checked against an embedded JSON
// Schema before they are merged.
package config
