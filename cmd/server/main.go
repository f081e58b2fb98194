package main

import (
	"fmt"
	"log"

	"laboratorio/internal/config"
	"laboratorio/internal/database"
	"laboratorio/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("seed: %v", err)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
