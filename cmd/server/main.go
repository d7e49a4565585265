package main

import (
	"os"

	"github.com/hitoshi/careerdesk/internal/app"
)

func main() {
	os.Exit(app.Run(os.Stdout, os.Args[1:]))
}
