package commands

import (
	"fmt"

	"github.com/belay-dotnet/docbuild/internal/apigen"
)

// FallbackCmd implements the 'fallback' command.
type FallbackCmd struct {
	Output string `short:"o" help:"Docs site root the output is written under" default:"."`
}

func (f *FallbackCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if err := apigen.WriteFallback(cfg, f.Output); err != nil {
		return fmt.Errorf("write fallback documentation: %w", err)
	}
	fmt.Printf("✅ Wrote fallback documentation for %d assemblies\n", len(cfg.Site.Fallback))
	return nil
}
