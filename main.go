package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "", "Path to config file (optional)")
	clientDir := flag.String("client", "", "Path to client directory (overrides config)")
	dbPath := flag.String("db", "", "Path to SQLite database (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *clientDir != "" {
		cfg.Server.ClientDir = *clientDir
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	if _, err := os.Stat(cfg.Server.ClientDir); os.IsNotExist(err) {
		exe, _ := os.Executable()
		fallback := filepath.Join(filepath.Dir(exe), "..", "client")
		if _, err := os.Stat(fallback); err == nil {
			cfg.Server.ClientDir = fallback
		}
	}

	db, err := OpenDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	hub := NewHub(cfg, db)
	go hub.Run()

	mux := SetupRoutes(hub, cfg.Server.ClientDir)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: cfg.Server.Addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", cfg.Server.Addr)
		log.Printf("Serving client files from %s", cfg.Server.ClientDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	if hub.analytics != nil {
		hub.analytics.Stop()
	}
	server.Close()
}
