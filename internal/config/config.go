// Package config handles configuration loading, validation, and persistence
// for the socwire daemon.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "config.json"
	DefaultAPIPort    = 8080
	DefaultRelayPort  = 8880
)

// Config is the root configuration structure for socwire.
type Config struct {
	mu   sync.RWMutex
	path string

	Relay    RelayConfig    `json:"relay"`
	API      APIConfig      `json:"api"`
	Store    StoreConfig    `json:"store"`
	MQTT     MQTTConfig     `json:"mqtt"`
	Security SecurityConfig `json:"security"`
	Logging  LoggingConfig  `json:"logging"`
}

// RelayConfig holds settings for the line-based TCP listener.
type RelayConfig struct {
	BindAddress    string `json:"bind_address"`
	Port           int    `json:"port"`
	ReadTimeoutSec int    `json:"read_timeout_sec"`
	MaxLineBytes   int    `json:"max_line_bytes"`
}

// APIConfig holds settings for the debug HTTP API.
type APIConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

// StoreConfig holds settings for the SQLite message log.
type StoreConfig struct {
	Path             string `json:"path"`
	RetentionRows    int    `json:"retention_rows"`
	PruneIntervalSec int    `json:"prune_interval_sec"`
}

// MQTTConfig holds MQTT telemetry settings.
type MQTTConfig struct {
	Enabled            bool   `json:"enabled"`
	BrokerURL          string `json:"broker_url"`
	Port               int    `json:"port"`
	UseTLS             bool   `json:"use_tls"`
	CertFile           string `json:"cert_file"`
	KeyFile            string `json:"key_file"`
	CAFile             string `json:"ca_file"`
	ClientID           string `json:"client_id"`
	TopicPrefix        string `json:"topic_prefix"`
	StatsIntervalSec   int    `json:"stats_interval_sec"`
	PublishEveryDecode bool   `json:"publish_every_decode"`
}

// SecurityConfig holds security-related settings for the API.
type SecurityConfig struct {
	TLSEnabled     bool     `json:"tls_enabled"`
	TLSCertFile    string   `json:"tls_cert_file"`
	TLSKeyFile     string   `json:"tls_key_file"`
	AllowedOrigins []string `json:"allowed_origins"`
	RateLimitRPS   int      `json:"rate_limit_rps"`
	IPWhitelist    []string `json:"ip_whitelist"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `json:"level"`
	Directory  string `json:"directory"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Relay: RelayConfig{
			BindAddress:    "0.0.0.0",
			Port:           DefaultRelayPort,
			ReadTimeoutSec: 300,
			MaxLineBytes:   16384,
		},
		API: APIConfig{
			Enabled: true,
			Port:    DefaultAPIPort,
		},
		Store: StoreConfig{
			Path:             "data/messages.db",
			RetentionRows:    100000,
			PruneIntervalSec: 3600,
		},
		MQTT: MQTTConfig{
			Enabled:          false,
			Port:             8883,
			UseTLS:           true,
			TopicPrefix:      "socwire",
			StatsIntervalSec: 60,
		},
		Security: SecurityConfig{
			RateLimitRPS: 100,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Directory:  "logs",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// Load reads configuration from a JSON file, creating a default one on
// first run.
func Load(configDir string) (*Config, error) {
	configPath := filepath.Join(configDir, DefaultConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", configPath).Msg("config file not found, creating default")
			cfg := DefaultConfig()
			cfg.path = configPath
			if saveErr := cfg.Save(); saveErr != nil {
				return nil, fmt.Errorf("failed to save default config: %w", saveErr)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig() // start with defaults, then overlay
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.path = configPath
	log.Info().Str("path", configPath).Msg("configuration loaded")

	// Re-save config to persist any new default fields added in code updates.
	if saveErr := cfg.Save(); saveErr != nil {
		log.Warn().Err(saveErr).Msg("failed to re-save config with updated defaults")
	}

	return cfg, nil
}

// Save writes the current configuration to disk.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Debug().Str("path", c.path).Msg("configuration saved")
	return nil
}

// GetRelay returns a copy of the relay configuration.
func (c *Config) GetRelay() RelayConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Relay
}

// GetAPI returns a copy of the API configuration.
func (c *Config) GetAPI() APIConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.API
}

// GetStore returns a copy of the store configuration.
func (c *Config) GetStore() StoreConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Store
}

// GetMQTT returns a copy of the MQTT configuration.
func (c *Config) GetMQTT() MQTTConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MQTT
}

// GetSecurity returns a copy of the security configuration.
func (c *Config) GetSecurity() SecurityConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Security
}

// UpdateField updates a top-level "section.key" field by its JSON name.
func (c *Config) UpdateField(key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, _ := json.Marshal(c)
	m := make(map[string]interface{})
	json.Unmarshal(data, &m)

	section, field, ok := splitKey(key)
	if !ok {
		return fmt.Errorf("invalid config key %q, expected section.key", key)
	}
	sec, ok := m[section].(map[string]interface{})
	if !ok {
		return fmt.Errorf("unknown config section %q", section)
	}
	if _, ok := sec[field]; !ok {
		return fmt.Errorf("unknown config field %q in section %q", field, section)
	}
	sec[field] = value

	updated, _ := json.Marshal(m)
	if err := json.Unmarshal(updated, c); err != nil {
		return fmt.Errorf("failed to update field %s: %w", key, err)
	}
	return nil
}

func splitKey(key string) (section, field string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:], i > 0 && i < len(key)-1
		}
	}
	return "", "", false
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}
