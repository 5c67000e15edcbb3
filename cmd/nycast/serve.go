package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/nycast/client/api"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the local operator console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			log.Printf("Starting console...")
			log.Printf("Service URL: %s", c.cfg.ServiceURL)
			log.Printf("Credential store: %s", c.cfg.CredentialsPath)

			h := api.NewHandler(c.sessions, c.balances, c.predictions)

			server := echo.New()
			server.HideBanner = true

			server.Use(middleware.Logger())
			server.Use(middleware.Recover())
			server.Use(middleware.CORS())

			h.RegisterRoutes(server)

			go func() {
				addr := fmt.Sprintf(":%d", c.cfg.ListenPort)
				if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start console server: %v", err)
				}
			}()

			log.Printf("Console started on port %d", c.cfg.ListenPort)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Println("Shutting down console...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Failed to shutdown console gracefully: %v", err)
			}

			log.Println("Console stopped")
			return nil
		},
	}
}
