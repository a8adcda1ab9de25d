package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tripbudget/backend/internal/models"
	"github.com/tripbudget/backend/internal/rates"
	"github.com/tripbudget/backend/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// apiURL parses the public base URL of the API from API_URL.
func apiURL() (*url.URL, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return nil, errors.New("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return u, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	url, err := apiURL()
	if err != nil {
		return err
	}

	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = "data"
	}

	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return err
	}

	err = models.Connect(filepath.Join(dataDir, "tripbudget.db"))
	if err != nil {
		return err
	}

	cfg, err := rates.ConfigFromEnv()
	if err != nil {
		return err
	}

	source, closeSource, err := rates.New(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	r, teardown, err := router.Config(url)
	if err != nil {
		return err
	}
	defer teardown()

	path := url.Path
	if path == "" {
		path = "/"
	}
	router.AttachRoutes(r.Group(path), source)

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
