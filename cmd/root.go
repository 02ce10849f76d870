package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"intervue/internal/config"
	"intervue/internal/logger"
	"intervue/internal/store"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "intervue",
		Short: "AI interview practice in your terminal",
		Long:  "Intervue runs simulated job interviews: pick a career and difficulty, answer AI-generated questions, and get scored feedback on every answer plus a final report.",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is intervue.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("language", "l", "", "session language: en or es (overrides config)")
	rootCmd.PersistentFlags().String("db", "", "path to SQLite history database (overrides INTERVUE_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(versionCmd)
}

func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	json, _ := cmd.Flags().GetBool("json")
	return logger.New(json, debug)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return nil, err
	}
	if lang, _ := cmd.Flags().GetString("language"); lang != "" {
		cfg.Language = lang
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBPath = db
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db / config (highest
// priority), then INTERVUE_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
