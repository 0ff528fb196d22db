package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "vwb",
	Short: "Pack, inspect and verify quantized weight blobs",
	Long: `vwb packs int8 weight tensors into block-compressed weight blobs and
verifies decoded content against recorded golden hashes.

Every flag can also be set through the environment with a VWB_ prefix,
e.g. VWB_VERBOSE=1 or VWB_XCHECK_SEED=7.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := buildLogger()
		if err != nil {
			return err
		}
		sugar = logger.Sugar()
		return nil
	},
}

// Execute runs the root command. The context carries shutdown signals into
// the subcommands.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if sugar != nil {
		_ = sugar.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit JSON logs instead of console logs")

	viper.SetEnvPrefix("VWB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	cobra.CheckErr(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))
	cobra.CheckErr(viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json")))
}

func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if viper.GetBool("log-json") {
		cfg = zap.NewProductionConfig()
	}
	level := zap.InfoLevel
	if viper.GetBool("verbose") {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// streamLogger adapts the zap sugar to the stream's Logger interface.
type streamLogger struct {
	sugar *zap.SugaredLogger
}

func (l streamLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l streamLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l streamLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}
