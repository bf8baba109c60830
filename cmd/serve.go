package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexrivera/archfolio/internal/analytics"
	"github.com/alexrivera/archfolio/internal/config"
	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/session"
	"github.com/alexrivera/archfolio/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(portOverride(cmd))
		exitOnError(err)
		exitOnError(runServe(cfg))
	},
}

// portOverride applies --port when it was given explicitly.
func portOverride(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
	}
}

func runServe(cfg *config.Config) error {
	mode := cfg.Server.Mode
	if verbose {
		mode = config.ModeDebug
	}
	gin.SetMode(string(mode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(content.Default(), session.Options{
		IdleTimeout: cfg.Session.IdleTimeout,
		MaxSessions: cfg.Session.MaxSessions,
	})
	go store.Run(ctx, cfg.Session.SweepInterval)

	var tracker web.Recorder
	if cfg.Analytics.Enabled {
		tr, err := analytics.Open(cfg.Analytics.DBPath)
		if err != nil {
			return fmt.Errorf("opening analytics: %w", err)
		}
		defer tr.Close()

		n, err := tr.Cleanup(ctx, cfg.Analytics.Retention)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: analytics cleanup failed: %v\n", err)
		} else if n > 0 {
			log.Printf("Cleaned up %d analytics events older than %s", n, cfg.Analytics.Retention)
		}
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
		tracker = tr
	}

	srv := web.New(web.Config{
		Port:            cfg.Server.Port,
		AllowAllOrigins: cfg.Server.AllowAllOrigins,
	}, store, tracker)

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "archfolio %s starting on port %d\n", Version, cfg.Server.Port)
	if cfg.Analytics.Enabled {
		fmt.Fprintf(os.Stderr, "  Analytics: %s\n", cfg.Analytics.DBPath)
	}
	fmt.Fprintf(os.Stderr, "  Session idle timeout: %s\n", cfg.Session.IdleTimeout)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
