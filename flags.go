package main

import urfavecli "github.com/urfave/cli/v2"

func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to settings file",
			Value:   "blockfront.yaml",
		},
		&urfavecli.BoolFlag{
			Name:  "debug",
			Usage: "Log at debug level",
		},
		&urfavecli.StringFlag{
			Name:  "log-file",
			Usage: "Also write logs to this file",
		},
		&urfavecli.StringFlag{
			Name:  "lang",
			Usage: "Override the interface language",
		},
		&urfavecli.BoolFlag{
			Name:  "skip-title",
			Usage: "Start at the main menu",
		},
		&urfavecli.BoolFlag{
			Name:  "ephemeral",
			Usage: "Keep worlds in memory only",
		},
	}
}
