package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/config"
	"github.com/daniss/frenchInvoice/internal/logger"
	"github.com/daniss/frenchInvoice/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server exposing the validation library.

Endpoints:
  - GET  /api/v1/validate/{kind}/{value}  - Validate one identifier
  - GET  /api/v1/format/{kind}/{value}    - Format one identifier
  - POST /api/v1/business/validate        - Cross-field business checks
  - POST /api/v1/invoice/validate         - EN 16931 invoice validation
  - POST /api/v1/compliance/deadline      - Mandate deadline lookup
  - GET  /api/v1/city/{postalCode}        - Postal code directory
  - GET  /api/v1/registry/{siren}         - Business registry lookup
  - GET  /health                          - Health check

Examples:
  # Start server on default port
  frenchinvoice serve

  # Start on custom port in debug mode
  frenchinvoice serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	addr := serverAddr
	if addr == "" {
		addr = cfg.HTTP.Addr()
	}

	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	rules := cfg.Compliance.Rules()

	srv := server.NewServer(&server.Config{
		Address:      addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		Rules:        &rules,
		Log:          lg,
	})

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", addr)
	return srv.Run()
}
