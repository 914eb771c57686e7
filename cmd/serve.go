package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arendjr/phebe/internal/logging"
	"github.com/arendjr/phebe/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Render the site and serve it over HTTP",
	Long: `Renders every page in every color scheme up front, then serves the
variants over HTTP until interrupted. Startup fails without binding a
port if any page, asset or palette color is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveListen != "" {
			cfg.ListenAddr = serveListen
		}

		logger, closer, err := logging.New(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}
		defer closer.Close()

		start := time.Now()
		built, err := buildSite(cfg)
		if err != nil {
			logger.Error("site build failed", "err", err)
			return err
		}
		logger.Info("site built",
			"pages", len(built.cache.Paths()),
			"articles", len(built.registry.Articles),
			"duration", time.Since(start),
		)
		for _, f := range built.orphans {
			logger.Warn("source not referenced by site.yml", "file", f)
		}

		srv := server.New(server.Config{
			ListenAddr:     cfg.ListenAddr,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}, built.cache, built.assets, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", "err", err)
			}
		}()

		logger.Info("phebe starting", "version", Version, "config", cfgFile)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "address to listen on (overrides listen_addr)")
	rootCmd.AddCommand(serveCmd)
}
