package main

import (
	"os"

	"github.com/dinotradez/backend/cmd/dinotradez/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
