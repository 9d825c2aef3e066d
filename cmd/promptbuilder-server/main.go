package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"promptbuilder/internal/adapters/wsync"
	"promptbuilder/internal/bootstrap"
	"promptbuilder/internal/config"
)

func main() {
	configFlag := flag.String("config", config.ConfigPath(), "path to the config file")
	addrFlag := flag.String("addr", "", "listen address (overrides the config)")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		log.Fatalf("promptbuilder-server: %v", err)
	}
	addr := cfg.ListenAddr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(bootstrap.FileSource(cfg), wsync.NewHub()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("promptbuilder-server: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("promptbuilder-server: %v", err)
	}
}
