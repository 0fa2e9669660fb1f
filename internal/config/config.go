package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg/draw"

	// output formats
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

type Config struct {
	Debug     bool   `mapstructure:"debug"`
	OutputDir string `mapstructure:"outputDir"`
	Format    string `mapstructure:"format"`

	// Dataset is an optional JSON comparison file. The matrix files, when
	// set, replace the confusion matrices.
	Dataset           string `mapstructure:"dataset"`
	CentralizedMatrix string `mapstructure:"centralizedMatrix"`
	FederatedMatrix   string `mapstructure:"federatedMatrix"`

	// Figure sizes in inches.
	AccuracyWidth   float64 `mapstructure:"accuracyWidth"`
	AccuracyHeight  float64 `mapstructure:"accuracyHeight"`
	ConfusionWidth  float64 `mapstructure:"confusionWidth"`
	ConfusionHeight float64 `mapstructure:"confusionHeight"`
	PaletteSize     int     `mapstructure:"paletteSize"`
	Annotate        bool    `mapstructure:"annotate"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("outputDir", "./charts")
	v.SetDefault("format", "png")
	v.SetDefault("dataset", "")
	v.SetDefault("centralizedMatrix", "")
	v.SetDefault("federatedMatrix", "")
	v.SetDefault("accuracyWidth", 12.0)
	v.SetDefault("accuracyHeight", 6.0)
	v.SetDefault("confusionWidth", 8.0)
	v.SetDefault("confusionHeight", 8.0)
	v.SetDefault("paletteSize", 9)
	v.SetDefault("annotate", true)
}

// Parse materializes the merged viper state and validates it.
func Parse(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	cfg.Format = strings.ToLower(strings.TrimPrefix(cfg.Format, "."))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("outputDir must not be empty")
	}
	if !supported(c.Format) {
		return errors.Errorf("unsupported format %q, want one of %v", c.Format, draw.Formats())
	}
	for name, v := range map[string]float64{
		"accuracyWidth":   c.AccuracyWidth,
		"accuracyHeight":  c.AccuracyHeight,
		"confusionWidth":  c.ConfusionWidth,
		"confusionHeight": c.ConfusionHeight,
	} {
		if v <= 0 {
			return errors.Errorf("%s must be positive, got %v", name, v)
		}
	}
	if c.PaletteSize < 2 {
		return errors.Errorf("paletteSize must be at least 2, got %d", c.PaletteSize)
	}
	return nil
}

func supported(format string) bool {
	for _, f := range draw.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

func (c *Config) ToString() string {
	return fmt.Sprintf(
		"outputDir=%s format=%s dataset=%q centralizedMatrix=%q federatedMatrix=%q accuracy=%gx%gin confusion=%gx%gin palette=%d annotate=%v debug=%v",
		c.OutputDir, c.Format, c.Dataset, c.CentralizedMatrix, c.FederatedMatrix,
		c.AccuracyWidth, c.AccuracyHeight, c.ConfusionWidth, c.ConfusionHeight,
		c.PaletteSize, c.Annotate, c.Debug,
	)
}
