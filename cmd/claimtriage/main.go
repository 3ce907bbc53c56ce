package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mkotturi/claimtriage/internal/cli"
)

func main() {
	// API keys may live in a local .env during development
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
