package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fedcompare-go/internal/config"
	"fedcompare-go/internal/dataset"
	"fedcompare-go/internal/logging"
)

var (
	cfgFile       string
	currentConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "fedcompare",
	Short:        "fedcompare renders centralized vs federated learning comparison charts",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}
		cfg, err := config.Parse(viper.GetViper())
		if err != nil {
			return err
		}
		logging.Init(cfg.Debug)
		currentConfig = cfg
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg(cfg.ToString())
		return nil
	},
	// Without a sub-command everything is rendered.
	RunE: runRenderAll,
}

func Execute() {
	logging.Init(false)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("fedcompare failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./fedcompare.{json,yaml} when present)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "./charts", "directory the charts are written to")
	rootCmd.PersistentFlags().StringP("format", "f", "png", "image format: png, svg, pdf, jpg, eps, tif")
	rootCmd.PersistentFlags().String("dataset", "", "JSON comparison file replacing the built-in results")
	rootCmd.PersistentFlags().String("centralized-matrix", "", "text file with the centralized confusion matrix")
	rootCmd.PersistentFlags().String("federated-matrix", "", "text file with the federated confusion matrix")

	for key, flag := range map[string]string{
		"debug":             "debug",
		"outputDir":         "output-dir",
		"format":            "format",
		"dataset":           "dataset",
		"centralizedMatrix": "centralized-matrix",
		"federatedMatrix":   "federated-matrix",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	viper.SetEnvPrefix("FEDCOMPARE")
	viper.AutomaticEnv()
}

// ensureConfigLoaded registers defaults and reads the config file. A
// missing default file is not an error, a missing --config file is.
func ensureConfigLoaded() error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fedcompare")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return errors.Wrap(err, "failed to load config")
	}
	return nil
}

// loadComparison builds the comparison the commands work on.
func loadComparison(cfg *config.Config) (*dataset.Comparison, error) {
	cmp := dataset.Default()
	if cfg.Dataset != "" {
		var err error
		if cmp, err = dataset.Load(cfg.Dataset); err != nil {
			return nil, err
		}
	}
	if cfg.CentralizedMatrix != "" {
		m, err := dataset.LoadMatrixFile(cfg.CentralizedMatrix, dataset.CentralizedMatrixTitle)
		if err != nil {
			return nil, err
		}
		cmp.CentralizedMatrix = m
	}
	if cfg.FederatedMatrix != "" {
		m, err := dataset.LoadMatrixFile(cfg.FederatedMatrix, dataset.FederatedMatrixTitle)
		if err != nil {
			return nil, err
		}
		cmp.FederatedMatrix = m
	}
	return cmp, cmp.Validate()
}
