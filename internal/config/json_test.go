// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"session_secret": "json-secret",
			"session_duration": "6h",
			"owner_setup_key": "json-key",
			"company_url": "https://example.test/",
			"logo_file": "logo.png"
		},
		"storage": {"db_file": "json.db"},
		"server": {"http_address": ":7070", "request_timeout": "15s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.SessionSecret)
	assert.Equal(t, 6*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "json-key", cfg.App.OwnerSetupKey)
	assert.Equal(t, "json.db", cfg.Storage.DBFile)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("no-such-file.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, "{not json")

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))

	assert.Equal(t, 90*time.Second, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))

	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalGarbage(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}
