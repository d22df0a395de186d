package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("MCP_FORM_MODE")
	os.Unsetenv("MCP_FORM_HOST")
	os.Unsetenv("MCP_FORM_PORT")
	os.Unsetenv("MCP_FORM_LOGLEVEL")
	os.Unsetenv("MCP_FORM_MAXREQUESTSIZE")
}

func TestLoadFromFlags_DefaultConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"mcp-form-renderer"}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "stdio" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "stdio")
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 8080 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 8080)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxRequestSize != DefaultMaxRequestSize {
		t.Errorf("LoadFromFlags() MaxRequestSize = %v, want %v", cfg.MaxRequestSize, DefaultMaxRequestSize)
	}
}

func TestLoadFromFlags_CommandLineFlags(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{
		"mcp-form-renderer",
		"--mode=server",
		"--host=0.0.0.0",
		"--port=9090",
		"--loglevel=debug",
		"--maxrequestsize=1048576",
	}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "server" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "server")
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 9090 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 9090)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "debug")
	}
	if cfg.MaxRequestSize != 1048576 {
		t.Errorf("LoadFromFlags() MaxRequestSize = %v, want %v", cfg.MaxRequestSize, 1048576)
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"mcp-form-renderer"}
	resetFlags()
	clearEnvVars()

	os.Setenv("MCP_FORM_MODE", "server")
	os.Setenv("MCP_FORM_PORT", "7070")
	os.Setenv("MCP_FORM_LOGLEVEL", "warn")

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "server" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "server")
	}
	if cfg.Port != 7070 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 7070)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "warn")
	}
}

func TestLoadFromFlags_InvalidConfiguration(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"mcp-form-renderer", "--mode=bogus"}
	resetFlags()
	clearEnvVars()

	if _, err := LoadFromFlags(); err == nil {
		t.Error("LoadFromFlags() expected error for invalid mode, got nil")
	}
}
