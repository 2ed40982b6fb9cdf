package main

import (
	"os"

	"github.com/mmynk/eatsplit/cmd/eatsplit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
