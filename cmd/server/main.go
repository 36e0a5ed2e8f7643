// Command server runs the HTTP API together with the followup replay and
// cascade resume workers.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/assetledger/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
