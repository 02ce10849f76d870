package main

import (
	"os"

	"github.com/joho/godotenv"

	"intervue/cmd"
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
