package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "XAG", cfg.Metal)
	require.Equal(t, "INR", cfg.Currency)
	require.Equal(t, "SI=F", cfg.SpotSymbol)
	require.Equal(t, "USD/INR", cfg.FXPair)
	require.Equal(t, 0.999, cfg.Purity)
	require.Equal(t, "live", cfg.Provider)
	require.Equal(t, "memory", cfg.CacheBackend)
	require.Equal(t, 95.00, cfg.SeedGramPrice)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("METAL", "XAU")
	t.Setenv("DUTY_PCT", "0.125")
	t.Setenv("FORMULA_VERSION", "2026-01-01")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "XAU", cfg.Metal)
	require.Equal(t, 0.125, cfg.DutyPct)

	f := cfg.Formula()
	require.Equal(t, "2026-01-01", f.Version)
	require.NoError(t, f.Validate())
}

func TestVariants_Defaults(t *testing.T) {
	var cfg Config

	got, err := cfg.Variants()
	require.NoError(t, err)
	require.Len(t, got, 8)
	require.Equal(t, "Delhi", got[0].Name)
	require.Equal(t, 0.0, got[0].OffsetPerGram)

	// Callers get a copy; mutating it must not leak into later calls.
	got[0].OffsetPerGram = 99
	again, err := cfg.Variants()
	require.NoError(t, err)
	require.Equal(t, 0.0, again[0].OffsetPerGram)
}

func TestVariants_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`[{"name":"Pune","offset_per_gram":0.30},{"name":"Surat","offset_per_gram":0.10,"levy_pct":0.5}]`,
	), 0o644))
	cfg := Config{VariantsFile: path}

	got, err := cfg.Variants()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Pune", got[0].Name)
	require.Equal(t, 0.30, got[0].OffsetPerGram)
	require.Equal(t, 0.5, got[1].LevyPct)
}

func TestVariants_FileErrors(t *testing.T) {
	_, err := Config{VariantsFile: "/nonexistent/variants.json"}.Variants()
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = Config{VariantsFile: path}.Variants()
	require.Error(t, err)
}
