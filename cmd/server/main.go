package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"command-forge/internal/config"
	"command-forge/internal/server"
	"command-forge/internal/storage"
	v "command-forge/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v %v...", v.AppName, v.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	log.Printf("[INFO] Using %s storage backend", cfg.StorageBackend)

	srv := server.New(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] API server error:", err)
		}
		cancel()
	}

	log.Printf("[INFO] %v exited cleanly", v.AppName)
}
