package main

import (
	"log"

	"mockadmin/internal/cli"
	"mockadmin/internal/config"
)

func main() {
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run()
}
