package main

import (
	"github.com/attire-labs/outfit-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
