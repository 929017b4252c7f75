package commands

import (
	"fmt"

	"github.com/belay-dotnet/docbuild/internal/convert"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	Src string `arg:"" optional:"" help:"Directory of exported HTML files" default:"api/generated/api/metadata"`
	Dst string `arg:"" optional:"" help:"Output directory for Markdown" default:"api/generated"`
}

func (c *ConvertCmd) Run(_ *Global, _ *CLI) error {
	res, err := convert.Tree(c.Src, c.Dst)
	if err != nil {
		return fmt.Errorf("convert HTML tree: %w", err)
	}
	fmt.Printf("✅ Converted %d/%d API documentation files\n", res.Converted, res.Found)
	if res.Failed > 0 {
		return fmt.Errorf("%d files failed to convert", res.Failed)
	}
	return nil
}
