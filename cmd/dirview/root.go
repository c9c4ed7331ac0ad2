package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	datasetPaths []string
	verbose      bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "dirview",
	Short: "Browse a biobank network directory",
	Long: `dirview reads a biobank network directory from YAML datasets and presents
it in the terminal: network report cards, filterable network listings and an
interactive browser with checkbox filter groups.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "system config file (default is $HOME/.dirview/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&datasetPaths, "dataset", nil, "dataset file(s), overrides dataset.paths from the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads CLI defaults from $HOME/.dirview.yaml and DIRVIEW_* variables.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Error("failed to find home directory", "error", err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".dirview")

	viper.SetEnvPrefix("DIRVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}

	// Flags win; viper fills in what the command line left unset.
	if len(datasetPaths) == 0 {
		datasetPaths = viper.GetStringSlice("dataset")
	}
	if cfgFile == "" {
		cfgFile = viper.GetString("config")
	}
	verbose = verbose || viper.GetBool("verbose")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
