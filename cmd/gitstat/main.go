package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/vukan322/gitstat/internal/cli"
)

func main() {
	// A local .env can carry GITHUB_TOKEN during development; absence is fine.
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
