package config

import "time"

// Config holds runtime settings for the WalletKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the auth server gRPC endpoint.
//   - DatabaseDSN: path of the local SQLite database file.
//   - Namespace: key prefix for the local key-value store.
//   - OnlineCheckInterval: how often the client probes server reachability.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	DatabaseDSN         string
	Namespace           string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabaseDSN = "walletkeeper.db"
	c.Namespace = "walletkeeper."
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
