package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeTempJSONConfig(t, `{
		"app": { "default_token": "json-token", "log_file": "runwatch.log" },
		"adapter": {
			"http_address": "http://localhost:8000/dashboard",
			"ws_address": "ws://localhost:8000",
			"request_timeout": "20s"
		},
		"storage": { "db": { "dsn": "local.db" } },
		"workers": { "poll_interval": 3000000000 }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "json-token", cfg.App.DefaultToken)
	assert.Equal(t, "http://localhost:8000/dashboard", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://localhost:8000", cfg.Adapter.WSAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Workers.PollInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeTempJSONConfig(t, `{"adapter": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(5 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"5s"`, string(b))
}
