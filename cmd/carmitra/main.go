package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/carmitra/carmitra/internal/cli"
)

func main() {
	// Load a local .env when present so API keys don't have to live in the
	// shell profile. A missing file is not an error.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
