package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourname/audiosplit_lite/internal/app/splithttp"
	"github.com/yourname/audiosplit_lite/internal/config"
	"github.com/yourname/audiosplit_lite/internal/workspace"
)

// main инициализирует HTTP-сервис нарезки и обеспечивает корректное завершение по сигналу.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	handler, _, err := splithttp.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Фоновая уборка воркспейсов, оставшихся после аварийного завершения.
	stopGC := workspace.StartGC(
		cfg.WorkDir,
		time.Duration(cfg.GCTTLMin)*time.Minute,
		time.Duration(cfg.GCIntervalMin)*time.Minute,
	)
	defer stopGC()

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("audiosplit listening on %s (work_dir=%s)", cfg.ListenAddr, cfg.WorkDir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("final shutdown error: %v", err)
	}
}
