// Package cmd implements the nexus-server CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ainexus/server/internal/config"
	"ainexus/server/internal/logger"
)

const (
	// Version is the current release version.
	Version = "1.0.0"
	// Banner is printed on startup.
	Banner = `
     _    ___   _   _
    / \  |_ _| | \ | | _____  ___   _ ___
   / _ \  | |  |  \| |/ _ \ \/ / | | / __|
  / ___ \ | |  | |\  |  __/>  <| |_| \__ \
 /_/   \_\___| |_| \_|\___/_/\_\\__,_|___/  %s
`
)

var (
	cfgFile string
	quiet   bool
)

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:   "nexus-server",
	Short: "AI Nexus marketplace backend",
	Long: `nexus-server hosts the AI Nexus backend services: the agent marketplace
inference testing API and the waitlist signup API. Each service runs as its
own subcommand and listens on its own port.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress startup output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf(Banner, Version) + "\n")
}

// GetRootCmd returns the root command, used by tests.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig loads configuration and initializes the global logger.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader = loader.WithConfigPath(cfgFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(&logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})

	return cfg, nil
}
