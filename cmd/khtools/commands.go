package main

import (
	"github.com/urfave/cli/v2"

	"khtools/internal/archive"
	"khtools/internal/ctd"
	"khtools/internal/exia"
	"khtools/internal/font"
	"khtools/internal/l2d"
)

func inFlag(usage string) *cli.PathFlag {
	return &cli.PathFlag{Name: "in", Aliases: []string{"i"}, Usage: usage, Required: true}
}

var cmdExtract = cli.Command{
	Name:  "extract",
	Usage: "unpack a .hed/.pkg archive",
	Flags: []cli.Flag{
		inFlag("archive (.hed, .pkg or the shared stem)"),
		&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Usage: "output folder", Required: true},
	},
	Action: func(c *cli.Context) error {
		return archive.Extract(c.Context, c.Path("in"), c.Path("out"))
	},
}

var cmdRepack = cli.Command{
	Name:  "repack",
	Usage: "rebuild a .hed/.pkg archive from an extracted folder",
	Flags: []cli.Flag{
		inFlag("folder written by extract"),
		&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Usage: "output archive stem", Required: true},
	},
	Action: func(c *cli.Context) error {
		return archive.Repack(c.Context, c.Path("in"), c.Path("out"))
	},
}

var cmdCTDDecompile = cli.Command{
	Name:  "ctd-decompile",
	Usage: "split a .ctd into .meta and .po",
	Flags: []cli.Flag{inFlag(".ctd file")},
	Action: func(c *cli.Context) error {
		return ctd.Decompile(c.Path("in"))
	},
}

var cmdCTDCompile = cli.Command{
	Name:  "ctd-compile",
	Usage: "rebuild a .ctd from its .meta and .po",
	Flags: []cli.Flag{inFlag(".ctd, .meta or .po path of the dialogue")},
	Action: func(c *cli.Context) error {
		return ctd.Compile(c.Path("in"))
	},
}

var cmdL2DConvert = cli.Command{
	Name:  "l2d-convert",
	Usage: "export the textures of an .l2d as PNG",
	Flags: []cli.Flag{inFlag(".l2d file")},
	Action: func(c *cli.Context) error {
		return l2d.Convert(c.Path("in"))
	},
}

var cmdL2DBuild = cli.Command{
	Name:  "l2d-build",
	Usage: "patch edited PNGs back into the original .l2d",
	Flags: []cli.Flag{
		inFlag("folder written by l2d-convert"),
		&cli.PathFlag{Name: "original", Usage: ".l2d to patch in place", Required: true},
	},
	Action: func(c *cli.Context) error {
		return l2d.Build(c.Path("in"), c.Path("original"))
	},
}

var cmdFontExtract = cli.Command{
	Name:  "font-extract",
	Usage: "split a font (.inf, .cod, .tm2) into glyph images",
	Flags: []cli.Flag{inFlag("any file of the font")},
	Action: func(c *cli.Context) error {
		return font.Extract(c.Path("in"))
	},
}

var cmdFontGenerate = cli.Command{
	Name:  "font-generate",
	Usage: "rebuild a font from a folder written by font-extract",
	Flags: []cli.Flag{inFlag("glyph folder")},
	Action: func(c *cli.Context) error {
		return font.Generate(c.Path("in"))
	},
}

var cmdExiaExtract = cli.Command{
	Name:  "exia-extract",
	Usage: "dump the English subtitles of a schedule .xml to .po",
	Flags: []cli.Flag{inFlag("schedule .xml file")},
	Action: func(c *cli.Context) error {
		return exia.Extract(c.Path("in"))
	},
}
