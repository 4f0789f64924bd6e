package config

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

const (
	// DefaultSecretKey is the shared secret used when none is configured. It is
	// public, so every real deployment must override it.
	DefaultSecretKey = "change-me-to-a-strong-secret"
	// DefaultAddress is the address the web server listens on when none is
	// configured.
	DefaultAddress = ":8080"

	// EnvSecretKey is the environment variable that sets the shared secret.
	EnvSecretKey = "SECRET_KEY"
	// EnvPort is the environment variable that sets the port the web server
	// listens on, on all interfaces.
	EnvPort = "PORT"
)

// Config represents the application configuration, read from a JSON file on
// a filesystem.
type Config struct {
	Server Server
	Auth   Auth

	fs   vfs.FileSystem
	path string
}

// Server defines configuration options specific to the HTTP server.
type Server struct {
	// Address is the network address in [host]:port format the server will listen on.
	Address sql.Null[string]
}

// Auth defines authentication options.
type Auth struct {
	// SecretKey is the shared secret clients must send in the "key" query
	// parameter.
	SecretKey sql.Null[string]
}

// NewConfig creates a new Config instance with the specified filesystem
// and configuration file path.
func NewConfig(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads and parses the configuration file from the filesystem.
// If the file doesn't exist, it initializes with an empty configuration.
func (c *Config) Load() error {
	configJSON, err := vfs.ReadFile(c.fs, c.path)
	if err != nil && !vfs.IsErrNotExist(err) {
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	// Ensure that unmarshalling JSON doesn't fail if the file doesn't exist or is empty.
	if len(configJSON) == 0 {
		configJSON = []byte("{}")
	}

	if err = json.Unmarshal(configJSON, c); err != nil {
		return fmt.Errorf("failed parsing configuration file: %w", err)
	}

	return nil
}

// Path returns the filesystem path where the configuration is stored.
func (c *Config) Path() string {
	return c.path
}

// ApplyEnv overrides configuration values with the ones set in the process
// environment. A set but empty SECRET_KEY sets an empty secret; an empty PORT
// is ignored.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvSecretKey); ok {
		c.Auth.SecretKey = sql.Null[string]{V: v, Valid: true}
	}
	if v, _ := lookupEnv(EnvPort); v != "" {
		c.Server.Address = sql.Null[string]{V: ":" + v, Valid: true}
	}
}

// SetDefaults sets default configuration values if they weren't set already.
func (c *Config) SetDefaults() {
	if !c.Server.Address.Valid {
		c.Server.Address = sql.Null[string]{V: DefaultAddress, Valid: true}
	}
	if !c.Auth.SecretKey.Valid {
		c.Auth.SecretKey = sql.Null[string]{V: DefaultSecretKey, Valid: true}
	}
}

// UsingDefaultSecret returns true if the shared secret wasn't configured.
func (c *Config) UsingDefaultSecret() bool {
	return c.Auth.SecretKey.V == DefaultSecretKey
}

type cfgWrapper struct {
	Server srvCfgWrapper  `json:"server"`
	Auth   authCfgWrapper `json:"auth"`
}
type srvCfgWrapper struct {
	Address string `json:"address,omitempty"`
}
type authCfgWrapper struct {
	SecretKey string `json:"secret_key,omitempty"`
}

// UnmarshalJSON implements custom JSON unmarshaling to convert plain values
// into sql.Null types.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w cfgWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	if w.Server.Address != "" {
		c.Server.Address = sql.Null[string]{V: w.Server.Address, Valid: true}
	}
	if w.Auth.SecretKey != "" {
		c.Auth.SecretKey = sql.Null[string]{V: w.Auth.SecretKey, Valid: true}
	}

	return nil
}
