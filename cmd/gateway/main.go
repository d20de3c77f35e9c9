package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/bloghub/internal/gateway"
	"github.com/dmitrijs2005/bloghub/internal/gateway/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := gateway.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
