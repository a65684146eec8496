package main

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"khtools/internal/archive"
	"khtools/internal/ctd"
	"khtools/internal/exia"
	"khtools/internal/font"
	"khtools/internal/l2d"
)

type handler func(ctx context.Context, path string) error

// unpackers handle every file type batch mode knows, keyed by extension.
var unpackers = map[string]handler{
	".hed": func(ctx context.Context, path string) error {
		return archive.Extract(ctx, path, strings.TrimSuffix(path, filepath.Ext(path)))
	},
	".ctd": func(_ context.Context, path string) error { return ctd.Decompile(path) },
	".l2d": func(_ context.Context, path string) error { return l2d.Convert(path) },
	".inf": func(_ context.Context, path string) error { return font.Extract(path) },
	".xml": func(_ context.Context, path string) error { return exia.Extract(path) },
}

var compilers = map[string]handler{
	".meta": func(_ context.Context, path string) error { return ctd.Compile(path) },
}

var cmdBatch = cli.Command{
	Name:  "batch",
	Usage: "process every known file under a folder",
	Flags: []cli.Flag{
		inFlag("folder to walk"),
		&cli.BoolFlag{Name: "compile", Usage: "rebuild dialogue from .meta/.po pairs instead of unpacking"},
	},
	Action: func(c *cli.Context) error {
		handlers := unpackers
		if c.Bool("compile") {
			handlers = compilers
		}
		done, failed, err := batch(c.Context, c.Path("in"), handlers)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"processed": done, "failed": failed}).Info("batch complete")
		return nil
	},
}

// batch walks root and runs the handler registered for each file's
// extension. A failing file is logged and skipped.
func batch(ctx context.Context, root string, handlers map[string]handler) (done, failed int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		h, ok := handlers[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		log.WithField("file", path).Debug("processing")
		if err := h(ctx, path); err != nil {
			log.WithError(err).WithField("file", path).Error("skipped")
			failed++
			return nil
		}
		done++
		return nil
	})
	return done, failed, err
}
