package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "mcp-form-renderer" {
		t.Errorf("Expected default server name to be 'mcp-form-renderer', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxRequestSize != 25*1024*1024 {
		t.Errorf("Expected default max request size to be 25MB, got %d", cfg.MaxRequestSize)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config - stdio mode",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			config: &Config{
				Mode:           "server",
				Host:           "127.0.0.1",
				Port:           8080,
				LogLevel:       "info",
				MaxRequestSize: 1024,
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			config: &Config{
				Mode:           "invalid",
				Host:           "127.0.0.1",
				Port:           8080,
				LogLevel:       "info",
				MaxRequestSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too low",
			config: &Config{
				Mode:           "server",
				Host:           "127.0.0.1",
				Port:           0,
				LogLevel:       "info",
				MaxRequestSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high",
			config: &Config{
				Mode:           "server",
				Host:           "127.0.0.1",
				Port:           70000,
				LogLevel:       "info",
				MaxRequestSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "port not validated in stdio mode",
			config: &Config{
				Mode:           "stdio",
				Host:           "127.0.0.1",
				Port:           0,
				LogLevel:       "info",
				MaxRequestSize: 1024,
			},
			wantErr: false,
		},
		{
			name: "invalid max request size",
			config: &Config{
				Mode:           "stdio",
				Host:           "127.0.0.1",
				Port:           8080,
				LogLevel:       "info",
				MaxRequestSize: 0,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				Mode:           "stdio",
				Host:           "127.0.0.1",
				Port:           8080,
				LogLevel:       "verbose",
				MaxRequestSize: 1024,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{Host: "localhost", Port: 9090}
	if got := cfg.Address(); got != "localhost:9090" {
		t.Errorf("Config.Address() = %v, want %v", got, "localhost:9090")
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		logLevel string
		want     bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"error", false},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigModeHelpers(t *testing.T) {
	serverCfg := &Config{Mode: ModeServer}
	if !serverCfg.IsServerMode() {
		t.Error("Expected IsServerMode() to be true for server mode")
	}
	if serverCfg.IsStdioMode() {
		t.Error("Expected IsStdioMode() to be false for server mode")
	}

	stdioCfg := &Config{Mode: ModeStdio}
	if stdioCfg.IsServerMode() {
		t.Error("Expected IsServerMode() to be false for stdio mode")
	}
	if !stdioCfg.IsStdioMode() {
		t.Error("Expected IsStdioMode() to be true for stdio mode")
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Mode:           "stdio",
		Host:           "127.0.0.1",
		Port:           8080,
		LogLevel:       "info",
		MaxRequestSize: 1024,
	}

	str := cfg.String()
	expected := "Config{Mode: stdio, Host: 127.0.0.1, Port: 8080, LogLevel: info, MaxRequestSize: 1024}"
	if str != expected {
		t.Errorf("Config.String() = %v, want %v", str, expected)
	}
}
