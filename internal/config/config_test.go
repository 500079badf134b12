package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dbsources-go/pkg/dbsources/models"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", DefaultFormat, "")
	flags.Bool("no-views", false, "")
	flags.String("sheet", "", "")
	flags.Int("port", 0, "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dbsources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, "Expressions", cfg.Sheet)
	assert.Equal(t, "Expression", cfg.Column)
	assert.Equal(t, "Databricks", cfg.Marker)
	assert.Equal(t, "combined", cfg.Format)
	assert.True(t, cfg.IncludeViews)
	assert.Equal(t, DefaultPort, cfg.UI.Port)
	assert.Equal(t, int64(DefaultMaxUploadMB)<<20, cfg.MaxUploadBytes())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
format: columns
sheet: Queries
log_level: warn
ui:
  port: 9000
  max_upload_mb: 10
`)
	t.Setenv("DBSOURCES_UI__PORT", "9100")
	t.Setenv("DBSOURCES_MARKER", "Databricks.Catalogs")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--no-views", "--sheet", "Lineage"}))

	cfg, used, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "dbsources.yaml", used)
	assert.Equal(t, "columns", cfg.Format)             // file
	assert.Equal(t, "Lineage", cfg.Sheet)              // flag over file
	assert.Equal(t, 9100, cfg.UI.Port)                 // env over file
	assert.Equal(t, 10, cfg.UI.MaxUploadMB)            // file
	assert.Equal(t, "Databricks.Catalogs", cfg.Marker) // env
	assert.False(t, cfg.IncludeViews)                  // --no-views
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "format: columns\n")

	flags := newFlagSet()
	require.NoError(t, flags.Parse(nil))

	cfg, _, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "columns", cfg.Format)
	assert.True(t, cfg.IncludeViews)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		errSubstr string
	}{
		{"bad format", "format: wide\n", "invalid format"},
		{"bad port", "ui:\n  port: 70000\n", "invalid ui.port"},
		{"bad log level", "log_level: loud\n", "invalid log level"},
		{"bad upload limit", "ui:\n  max_upload_mb: 0\n", "invalid ui.max_upload_mb"},
		{"empty sheet", "sheet: \"\"\n", "must not be empty"},
		{"malformed yaml", "format: [\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			writeConfig(t, dir, tt.yaml)

			_, _, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{
		Sheet:        "Expressions",
		Column:       "Expression",
		Marker:       "Databricks",
		Format:       "columns",
		IncludeViews: false,
	}

	opts := cfg.Options()
	assert.Equal(t, models.FormatColumns, opts.Format)
	assert.False(t, opts.ShouldIncludeViews())
	assert.Equal(t, "Expressions", opts.Sheet)
}
