// Package main starts the fleetdesk admin console process.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	admincmd "github.com/louisbranch/fleetdesk/internal/cmd/admin"
	"github.com/louisbranch/fleetdesk/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: parse flags: %v", err)
	}
	log.SetPrefix("[ADMIN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := admincmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
