package main

import (
	"fmt"
	"os"

	"github.com/automoto/blockfront/config"
	urfavecli "github.com/urfave/cli/v2"
)

func main() {
	app := &urfavecli.App{
		Name:    "blockfront",
		Usage:   "Title screen and world select for a block world",
		Version: config.Version,
		Flags:   globalFlags(),
		Action:  run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
