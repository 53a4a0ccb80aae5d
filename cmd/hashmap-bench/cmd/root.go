package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/amgfrthsp/HSE.HashMap/internal/config"
	"github.com/amgfrthsp/HSE.HashMap/internal/logger"
)

var (
	cfgFile string
	cfg     = config.New()
	log     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "hashmap-bench <command> [flags]",
	Short:             "exercise the chained hash map",
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		if log, err = logger.New(cfg.Log); err != nil {
			return errors.Wrap(err, "init logger")
		}
		log.Debug("config loaded", zap.String("file", cfgFile), zap.Any("bench", cfg.Bench))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path of a YAML configuration file")
	flags.String("log.level", cfg.Log.Level, "log level: debug, info, warn, error")
	flags.String("log.format", cfg.Log.Format, "log format: console or json")
	flags.String("log.file", cfg.Log.File, "rotate logs into this file instead of stderr")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(loadCmd)
}
