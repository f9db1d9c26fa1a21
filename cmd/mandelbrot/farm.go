package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivantronics/mandelbrot/internal/farm"
)

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := farm.NewServer(farm.ParamsFromConfig(cfg), cfg.TileSize)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              serveAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("listening on %s (workers dial /ws, image at /image, progress at /progress)", serveAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	img, err := srv.Image(cmd.Context())
	if err != nil {
		return err
	}
	if err := savePNG(cfg.Output, img); err != nil {
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func runWork(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name := workerName
	if name == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "worker"
		}
		name = host
	}
	return farm.Work(cmd.Context(), serverURL, name, procs)
}
