package main

import (
	"github.com/alecthomas/kong"
	"github.com/lepinkainen/png2webp/cmd"
	"github.com/lepinkainen/png2webp/types"
)

var Version = "dev"

type CLI struct {
	Convert cmd.ConvertCmd   `cmd:"" default:"withargs" help:"Convert PNG images under a directory to WebP"`
	Check   cmd.CheckCmd     `cmd:"" help:"Check that external conversion tools are available"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("png2webp"),
		kong.Description("Batch-convert PNG images to WebP, preserving metadata and file timestamps."),
		kong.Vars{"version": Version},
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
