package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ainexus/server/internal/api/waitlistapi"
	"ainexus/server/internal/database"
	"ainexus/server/internal/logger"
	"ainexus/server/internal/mailer"
	"ainexus/server/internal/waitlist"
)

var waitlistAddress string

// waitlistCmd runs the waitlist signup API.
var waitlistCmd = &cobra.Command{
	Use:   "waitlist",
	Short: "Start the waitlist signup API",
	Long: `Start the waitlist signup API. It records signups in the hosted
database and sends welcome and invitation emails over SMTP when credentials
are configured.`,
	Example: `  # Start with defaults (listens on :8001)
  nexus-server waitlist

  # Point at the hosted database
  SUPABASE_DB_URL="postgres://..." nexus-server waitlist

  # Use a config file
  nexus-server waitlist --config config/config.yml`,
	RunE: runWaitlist,
}

func init() {
	rootCmd.AddCommand(waitlistCmd)

	waitlistCmd.Flags().StringVar(&waitlistAddress, "address", "", "listen address (overrides config)")
}

func runWaitlist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("address") {
		cfg.Waitlist.Address = waitlistAddress
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("close database failed", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(&waitlist.Entry{}); err != nil {
		return fmt.Errorf("migrate waitlist table: %w", err)
	}

	store := waitlist.NewStore(db)
	notifier := mailer.New(cfg.SMTP)

	server := waitlistapi.NewServer(store, notifier, &waitlistapi.Config{
		Address:      cfg.Waitlist.Address,
		ReadTimeout:  cfg.Waitlist.ReadTimeout,
		WriteTimeout: cfg.Waitlist.WriteTimeout,
		EnableCORS:   cfg.Waitlist.EnableCORS,
		Version:      cfg.App.Version,
	})

	if !quiet {
		fmt.Printf(Banner, Version)
		fmt.Println()
		fmt.Printf("  Starting waitlist API on %s\n", cfg.Waitlist.Address)
		if notifier.Enabled() {
			fmt.Printf("  Email: configured (%s)\n", cfg.SMTP.From)
		} else {
			fmt.Println("  Email: not configured, sends will be logged only")
		}
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
			return fmt.Errorf("start waitlist server: %w", err)
		}
	case sig := <-sigCh:
		logger.Info("shutting down waitlist server", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("shutdown waitlist server: %w", err)
		}
	}

	return nil
}
