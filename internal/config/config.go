// Package config holds the runtime settings of the agenda CLI and the
// layered loading logic: defaults, then .env/environment, then flags, with
// later sources taking precedence.
package config

// Config holds runtime settings for the agenda CLI.
//
// Fields:
//   - DataDir: directory holding the data file, audit log and backups.
//   - DataFile: name of the JSON document inside DataDir.
//   - AuditFile: name of the append-only audit log inside DataDir.
type Config struct {
	DataDir   string
	DataFile  string
	AuditFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DataFile = "contacts.json"
	c.AuditFile = "log.txt"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded from a .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
