package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/belay-dotnet/docbuild/cmd/docbuild/commands"
	"github.com/belay-dotnet/docbuild/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docbuild"),
		kong.Description("Documentation build utilities for the Belay.NET docs site"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	ctx.FatalIfErrorf(ctx.Run(global, &cli))
}
