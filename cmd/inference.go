package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ainexus/server/internal/api/inference"
	"ainexus/server/internal/catalog"
	"ainexus/server/internal/logger"
	"ainexus/server/internal/simulator"
)

var inferenceAddress string

// inferenceCmd runs the marketplace inference testing API.
var inferenceCmd = &cobra.Command{
	Use:   "inference",
	Short: "Start the agent marketplace inference API",
	Long: `Start the inference testing API. It serves the agent catalog and runs
simulated inference and benchmarks against the registered agents.`,
	Example: `  # Start with defaults (listens on :8000)
  nexus-server inference

  # Custom listen address
  nexus-server inference --address :9000

  # Use a config file
  nexus-server inference --config config/config.yml`,
	RunE: runInference,
}

func init() {
	rootCmd.AddCommand(inferenceCmd)

	inferenceCmd.Flags().StringVar(&inferenceAddress, "address", "", "listen address (overrides config)")
}

func runInference(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("address") {
		cfg.Inference.Address = inferenceAddress
	}

	sim := simulator.New(catalog.Default())
	server := inference.NewServer(sim, &inference.Config{
		Address:      cfg.Inference.Address,
		ReadTimeout:  cfg.Inference.ReadTimeout,
		WriteTimeout: cfg.Inference.WriteTimeout,
		EnableCORS:   cfg.Inference.EnableCORS,
		Version:      cfg.App.Version,
	})

	if !quiet {
		fmt.Printf(Banner, Version)
		fmt.Println()
		fmt.Printf("  Starting inference API on %s\n", cfg.Inference.Address)
		fmt.Printf("  Registered agents: %d\n", sim.Registry().Len())
		fmt.Println()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start inference server: %w", err)
		}
	case sig := <-sigCh:
		logger.Info("shutting down inference server", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("shutdown inference server: %w", err)
		}
	}

	return nil
}
