package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server"
	"github.com/dmitrijs2005/recipebox/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := run(ctx, cfg, server.NewDefaultLogger()); err != nil {
		log.Fatalf("%v", err)
	}

}

// run returns setup errors so main can exit non-zero on them.
func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app.Run(ctx)
	return nil
}
