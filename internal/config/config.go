// Package config loads analyzer configuration from a JSON config file
// with INCILENS_* environment overrides. Secrets (API keys, tokens) are
// environment-only and never written to the config file.
package config

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Remote  RemoteConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
	// APIToken protects the management endpoints. Empty disables them.
	APIToken string
}

type StorageConfig struct {
	DataDir string
}

type RemoteConfig struct {
	// Enabled toggles the remote-first path; when false the analyzer
	// runs purely on the local engine.
	Enabled bool
	BaseURL string
	APIKey  string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4600,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Remote: RemoteConfig{
			Enabled: true,
			BaseURL: "https://api.incilens.dev",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON config file at
// $XDG_CONFIG_HOME/incilens/config.json, then applies INCILENS_*
// environment overrides.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)

	return cfg, nil
}
