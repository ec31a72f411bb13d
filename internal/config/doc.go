// Package config loads reconcile.toml, the optional project configuration
// for the command line tools: diff workers, patch history retention, and
// telemetry switches. A missing file yields the defaults.
package config
