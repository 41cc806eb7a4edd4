// Command server runs the ranch trail HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) with environment
// overrides; see internal/config. Apply migrations first with
// `trailctl migrate`.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/pokeranch-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
