package main

import (
	"context"
	"log"

	"ats-backend/internal/server"
	"ats-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	r, err := server.NewRouter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("router setup failed: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
