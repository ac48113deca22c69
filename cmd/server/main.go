// Command server runs the glossary HTTP server: health probes, term search,
// term detail and the admin seed trigger.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/glosariodev/glosario-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
