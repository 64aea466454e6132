package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s]: %s", e.Field, e.Message)
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (r *ValidationResult) AddWarning(field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: message})
}

// Validate performs validation of the configuration.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	validateRelay(&cfg.Relay, result)
	validateAPI(&cfg.API, result)
	validateStore(&cfg.Store, result)
	validateMQTT(&cfg.MQTT, result)
	validateSecurity(&cfg.Security, result)

	if cfg.Relay.Port == cfg.API.Port {
		result.AddError("relay.port", "relay and API ports must differ")
	}

	return result
}

func validateRelay(relay *RelayConfig, result *ValidationResult) {
	validatePort(relay.Port, "relay.port", result)

	if relay.BindAddress != "" && net.ParseIP(relay.BindAddress) == nil {
		result.AddError("relay.bind_address",
			fmt.Sprintf("not a valid IP address: %s", relay.BindAddress))
	}
	if relay.ReadTimeoutSec < 10 {
		result.AddWarning("relay.read_timeout_sec",
			"read timeout under 10s will drop idle but healthy clients")
	}
	if relay.MaxLineBytes < 512 {
		result.AddError("relay.max_line_bytes",
			"max line length must be at least 512 bytes")
	}
}

func validateAPI(api *APIConfig, result *ValidationResult) {
	if api.Enabled {
		validatePort(api.Port, "api.port", result)
	}
}

func validateStore(store *StoreConfig, result *ValidationResult) {
	if strings.TrimSpace(store.Path) == "" {
		result.AddError("store.path", "message store path is required")
	}
	if store.RetentionRows < 100 {
		result.AddWarning("store.retention_rows",
			"retention under 100 rows makes the message log nearly useless")
	}
}

func validateMQTT(mqtt *MQTTConfig, result *ValidationResult) {
	if !mqtt.Enabled {
		return
	}
	if strings.TrimSpace(mqtt.BrokerURL) == "" {
		result.AddError("mqtt.broker_url", "MQTT broker URL is required when enabled")
	}
	if mqtt.Port < 1 || mqtt.Port > 65535 {
		result.AddError("mqtt.port", "invalid MQTT port")
	}
	if mqtt.StatsIntervalSec < 5 {
		result.AddWarning("mqtt.stats_interval_sec",
			"stats interval under 5s may flood the broker")
	}
}

func validateSecurity(sec *SecurityConfig, result *ValidationResult) {
	if sec.TLSEnabled {
		if strings.TrimSpace(sec.TLSCertFile) == "" {
			result.AddError("security.tls_cert_file",
				"TLS certificate file is required when TLS is enabled")
		}
		if strings.TrimSpace(sec.TLSKeyFile) == "" {
			result.AddError("security.tls_key_file",
				"TLS key file is required when TLS is enabled")
		}
	}

	if sec.RateLimitRPS < 1 {
		result.AddWarning("security.rate_limit_rps",
			"rate limit is disabled (0 RPS), this may expose the API to abuse")
	}
}

func validatePort(port int, field string, result *ValidationResult) {
	if port < 1 || port > 65535 {
		result.AddError(field, fmt.Sprintf("invalid port number: %d (must be 1-65535)", port))
		return
	}
	if port < 1024 {
		result.AddWarning(field,
			fmt.Sprintf("port %d is a privileged port, may require elevated permissions", port))
	}
}

// IsPortAvailable checks if a port is available for binding.
func IsPortAvailable(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	ln.Close()
	return true
}
