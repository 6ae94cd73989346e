package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rezonia/cetustek-go/internal/client"
	"github.com/rezonia/cetustek-go/internal/config"
	"github.com/rezonia/cetustek-go/internal/server"
)

var (
	serverAddr  string
	serverDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP facade",
	Long: `Start the JSON HTTP facade in front of the Cetustek invoice API.

Endpoints:
  POST /api/v1/invoices                       - issue an invoice
  GET  /api/v1/invoices/:year/:number         - query an invoice
  POST /api/v1/invoices/:year/:number/cancel  - cancel an invoice
  GET  /health                                - health check`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default from CETUSTEK_LISTEN_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serverAddr != "" {
		cfg.Server.Address = serverAddr
	}
	if serverDebug {
		cfg.Server.Debug = true
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Server.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := client.New(client.Config{
		Endpoint:    cfg.Cetustek.Endpoint,
		RentID:      cfg.Cetustek.RentID,
		SiteCode:    cfg.Cetustek.SiteCode,
		APIPassword: cfg.Cetustek.APIPassword,
	}, client.WithTimeout(cfg.Cetustek.Timeout), client.WithLogger(log))
	if err != nil {
		return err
	}

	srv := server.NewServer(&server.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Debug:        cfg.Server.Debug,
	}, c, log)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	log.WithField("address", cfg.Server.Address).Info("starting facade")
	return srv.Run()
}
