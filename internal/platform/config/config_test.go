// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/katalog/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults applied when nothing is set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/migrations", cfg.MigrationPath)
	assert.False(t, cfg.UsesDatabase())
}

/*
TestLoad_Overrides verifies that environment variables win over defaults.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATASET_PATH", "/srv/nkz.json")
	t.Setenv("DATABASE_URL", "postgres://katalog@localhost/katalog")
	t.Setenv("ALLOWED_ORIGIN_SUFFIX", "example.hr")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/srv/nkz.json", cfg.DatasetPath)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "example.hr", cfg.OriginSuffix())
}

/*
TestLoad_InvalidBool surfaces parse errors for malformed values.
*/
func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("DEBUG", "maybe")

	_, err := config.Load()
	assert.Error(t, err)
}
