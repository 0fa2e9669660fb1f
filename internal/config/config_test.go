package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Parse(v)
	require.NoError(t, err)
	assert.Equal(t, "./charts", cfg.OutputDir)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 12.0, cfg.AccuracyWidth)
	assert.Equal(t, 6.0, cfg.AccuracyHeight)
	assert.Equal(t, 8.0, cfg.ConfusionWidth)
	assert.Equal(t, 8.0, cfg.ConfusionHeight)
	assert.True(t, cfg.Annotate)
	assert.Contains(t, cfg.ToString(), "format=png")
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fedcompare.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": ".SVG", "outputDir": "out", "paletteSize": 5}`), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Parse(v)
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 5, cfg.PaletteSize)
}

func TestParse_Invalid(t *testing.T) {
	for key, val := range map[string]interface{}{
		"format":         "bmp",
		"outputDir":      "",
		"accuracyWidth":  0.0,
		"confusionWidth": -1.0,
		"paletteSize":    1,
	} {
		v := viper.New()
		SetDefaults(v)
		v.Set(key, val)
		_, err := Parse(v)
		assert.Error(t, err, key)
	}
}
