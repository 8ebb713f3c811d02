package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-run-watch/internal/client"
	"github.com/MKhiriev/go-run-watch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string

	// defaultToken is the fallback bearer credential embedded at build time
	// (-ldflags "-X main.defaultToken=...").
	defaultToken string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewCLI(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), defaultToken)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "runwatch: %v\n", err)
		stop()
		os.Exit(1)
	}
}
