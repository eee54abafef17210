package main

import (
	"fmt"
	"os"

	"github.com/trigg3rX/triggerx-sdk-go/internal/cli/commands"
)

func main() {
	app := commands.NewApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
