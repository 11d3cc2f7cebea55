package main

import (
	"os"

	"github.com/estensen/merkleroot/internal/logging"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.New("merkleroot", os.Stderr).Fatal(err)
	}
}
