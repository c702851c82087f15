package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slotview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadViewer_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadViewer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultViewer(), cfg)
}

func TestLoadViewer_Overrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level: debug
language: eng
load_timeout: 3s
layout:
  base_top: 0x1000
  rows: 2
  cols: 5
  max_players: 1
sources:
  items: http://example.test/items.csv
  variations: postgres:variations
`)

	cfg, err := LoadViewer(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "eng", cfg.Language)
	assert.Equal(t, 3*time.Second, cfg.LoadTimeout)
	assert.Equal(t, uint32(0x1000), cfg.Layout.BaseTop)
	assert.Equal(t, 2, cfg.Layout.Rows)
	assert.Equal(t, 5, cfg.Layout.Cols)
	assert.Equal(t, 10, cfg.Layout.SlotCount())
	// Не указанные поля сохраняют значения по умолчанию
	assert.Equal(t, DefaultLayout().ColStride, cfg.Layout.ColStride)
	assert.Equal(t, "http://example.test/items.csv", cfg.Sources.Items)
	assert.Equal(t, "csv/recipes.csv", cfg.Sources.Recipes)
	assert.Equal(t, "postgres:variations", cfg.Sources.Variations)
}

func TestLoadViewer_InvalidLayout(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "layout:\n  rows: 3\n")

	_, err := LoadViewer(path)
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLoadViewer_BadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "layout: [unclosed\n")

	_, err := LoadViewer(path)
	require.Error(t, err)
}

func TestLayoutValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"default", DefaultLayout(), false},
		{"single slot", Layout{Rows: 1, Cols: 1, MaxPlayers: 1, ColStride: 8}, false},
		{"odd rows", Layout{Rows: 3, Cols: 10, MaxPlayers: 1}, true},
		{"zero cols", Layout{Rows: 2, Cols: 0, MaxPlayers: 1}, true},
		{"zero players", Layout{Rows: 2, Cols: 2, MaxPlayers: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", d.DSN())
}
