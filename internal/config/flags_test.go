package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5000}, expected: "localhost:5000"},
		{name: "IP address with port", addr: NetAddress{Host: "0.0.0.0", Port: 5000}, expected: "0.0.0.0:5000"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:5000", expectedAddr: NetAddress{Host: "localhost", Port: 5000}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":5000", expectedAddr: NetAddress{Port: 5000}},
		{name: "missing colon", input: "localhost5000", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "invalid host", input: "example.com:5000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags("server", []string{
		"-a", "127.0.0.1:5001",
		"-d", "file:study.db",
		"-driver", "sqlite3",
		"-f", "/var/lib/study",
		"-upload-dir", "/tmp/uploads",
		"-in-memory",
		"-max-sessions", "25",
		"-c", "/etc/study.json",
		"-token-sign-key", "flag-key",
		"-token-issuer", "flag-issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-allowed-origin", "https://study.example",
		"-inference-url", "http://inference.local/summarize",
		"-transcription-url", "http://inference.local/transcribe",
		"-inference-timeout", "20s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5001", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:study.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/study", cfg.Storage.Files.DataDir)
	assert.Equal(t, "/tmp/uploads", cfg.Storage.Files.UploadDir)
	assert.True(t, cfg.Storage.Files.InMemory)
	assert.Equal(t, 25, cfg.Storage.MaxSessions)
	assert.Equal(t, "/etc/study.json", cfg.JSONFilePath)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://study.example", cfg.Server.AllowedOrigin)
	assert.Equal(t, "http://inference.local/summarize", cfg.Adapter.InferenceURL)
	assert.Equal(t, "http://inference.local/transcribe", cfg.Adapter.TranscriptionURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags("server", nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags("server", []string{"-a", "nowhere"})
	assert.Error(t, err)
}
