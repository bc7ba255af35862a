package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/cardbook/internal/catalog"
	"github.com/arcanaland/cardbook/internal/config"
	"github.com/arcanaland/cardbook/internal/search"
)

var (
	verbose     bool
	datasetFlag string
	logger      = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardbook",
	Short: "Search and browse the Agricola card database",
	Long: `Cardbook is a command-line companion for the Agricola card database.
It searches occupations, minor and major improvements with typo tolerant
matching, shows card details with terminal art, and validates card datasets.

Without --dataset the built-in dataset (or the default from your config) is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "",
		"Dataset from your dataset library, or a path to a dataset file or directory")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadCatalog loads the dataset named by --dataset, falling back to the
// configured default and then to the embedded dataset
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	name := datasetFlag
	if name == "" {
		name = cfg.DefaultDataset
	}

	if name == "" {
		c, err := catalog.LoadDefault(logger)
		if err != nil {
			return nil, err
		}
		if cfg.AssetDir != "" {
			c.SetAssetDir(cfg.AssetDir)
		}
		return c, nil
	}

	path, err := config.GetDatasetPath(name)
	if err != nil {
		return nil, err
	}

	c, err := catalog.Load(path, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}
	return c, nil
}

// loadIndex loads the config and dataset and builds the search index
func loadIndex() (*config.Config, *catalog.Catalog, *search.Index, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	idx := search.NewIndex(c.Cards(), search.WithThreshold(cfg.Threshold))
	logger.Debug("search index ready",
		zap.Int("cards", idx.Len()), zap.Float64("threshold", idx.Threshold()))

	return cfg, c, idx, nil
}
