// Command khtools extracts and rebuilds the data files of the Kingdom
// Hearts PC re-release.
package main

import (
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli/v2"
)

func main() {
	log.SetHandler(clihandler.Default)

	app := &cli.App{
		Name:  "khtools",
		Usage: "extract and rebuild Kingdom Hearts PC packages, dialogue, fonts and textures",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "log debug messages",
				EnvVars: []string{"KHTOOLS_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			&cmdExtract,
			&cmdRepack,
			&cmdCTDDecompile,
			&cmdCTDCompile,
			&cmdL2DConvert,
			&cmdL2DBuild,
			&cmdFontExtract,
			&cmdFontGenerate,
			&cmdExiaExtract,
			&cmdBatch,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("failed")
	}
}
