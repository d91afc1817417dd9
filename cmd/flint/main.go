package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:            "flint",
	Usage:           "a tiny text protocol server and client over plain TCP",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a .json or .env config file",
			EnvVars: []string{"FLINT_CONFIG"},
		},
	},
	Commands: []*cli.Command{
		serveCmd,
		sendCmd,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "flint: %s\n", err)
		os.Exit(1)
	}
}
