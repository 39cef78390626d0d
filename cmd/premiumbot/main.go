package main

import (
	"log"

	corecmd "premiumbot/core/cmd"
	"premiumbot/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        app.LoadCarrier,
		Bootstrap:         app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("premiumbot: %v", err)
	}
}
