package main

import (
	"os"

	"vesrates/internal/app"
)

// @title VES Rates API
// @version 1.0
// @description USD→VES exchange-rate synchronization and alerting service
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
