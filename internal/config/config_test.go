package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Relay.Port != DefaultRelayPort {
		t.Errorf("Relay.Port = %d, want %d", cfg.Relay.Port, DefaultRelayPort)
	}
	if cfg.API.Port != DefaultAPIPort {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, DefaultAPIPort)
	}
	if !cfg.API.Enabled {
		t.Error("API should be enabled by default")
	}
	if cfg.MQTT.Enabled {
		t.Error("MQTT should be disabled by default")
	}
	if cfg.Store.RetentionRows <= 0 {
		t.Errorf("Store.RetentionRows = %d, want > 0", cfg.Store.RetentionRows)
	}

	result := Validate(cfg)
	if !result.IsValid() {
		t.Errorf("default config should validate, got errors: %v", result.Errors)
	}
}

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, DefaultConfigFile)); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if cfg.Relay.Port != DefaultRelayPort {
		t.Errorf("Relay.Port = %d, want %d", cfg.Relay.Port, DefaultRelayPort)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Relay.Port = 9990
	cfg.Logging.Level = "debug"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Relay.Port != 9990 {
		t.Errorf("Relay.Port = %d, want 9990", reloaded.Relay.Port)
	}
	if reloaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", reloaded.Logging.Level)
	}
}

func TestUpdateField(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.UpdateField("relay.port", 9000); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if cfg.Relay.Port != 9000 {
		t.Errorf("Relay.Port = %d, want 9000", cfg.Relay.Port)
	}

	if err := cfg.UpdateField("logging.level", "debug"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	badKeys := []string{"relay", "nosuchsection.port", "relay.nosuchfield", ".port", "relay."}
	for _, key := range badKeys {
		if err := cfg.UpdateField(key, 1); err == nil {
			t.Errorf("UpdateField(%q) should fail", key)
		}
	}
}

func TestValidateRejectsBadPorts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Relay.Port = 0
	if Validate(cfg).IsValid() {
		t.Error("relay port 0 should not validate")
	}

	cfg = DefaultConfig()
	cfg.API.Port = 70000
	if Validate(cfg).IsValid() {
		t.Error("api port 70000 should not validate")
	}

	cfg = DefaultConfig()
	cfg.API.Port = cfg.Relay.Port
	if Validate(cfg).IsValid() {
		t.Error("relay and api on the same port should not validate")
	}
}

func TestValidateMQTT(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MQTT.Enabled = true
	cfg.MQTT.BrokerURL = ""
	if Validate(cfg).IsValid() {
		t.Error("MQTT enabled without broker URL should not validate")
	}

	cfg.MQTT.BrokerURL = "broker.example.com"
	if !Validate(cfg).IsValid() {
		t.Errorf("MQTT with broker URL should validate, got %v", Validate(cfg).Errors)
	}
}
