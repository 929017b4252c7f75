package apigen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/logfields"
)

// FallbackMarker is the literal text identifying placeholder pages. The
// deployment validator greps built pages for it.
const FallbackMarker = "Fallback documentation"

// WriteFallback writes hand-authored placeholder pages for every configured
// assembly plus a fallback index. It is used when XML extraction yields no
// usable material.
func WriteFallback(cfg *config.Config, baseDir string) error {
	generatedDir := filepath.Join(baseDir, cfg.Output.GeneratedDir)
	if err := os.MkdirAll(generatedDir, 0o755); err != nil {
		return fmt.Errorf("create generated directory: %w", err)
	}

	names := make([]string, 0, len(cfg.Site.Fallback))
	for _, asm := range cfg.Site.Fallback {
		names = append(names, asm.Name)
		dir := filepath.Join(generatedDir, asm.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create assembly directory: %w", err)
		}
		page := renderFallbackAssembly(asm)
		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(page), 0o644); err != nil {
			return fmt.Errorf("write fallback page for %s: %w", asm.Name, err)
		}
		slog.Info("Wrote fallback documentation", logfields.Assembly(asm.Name))
	}

	indexPath := filepath.Join(baseDir, cfg.Output.APIDir, "index.md")
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return fmt.Errorf("create api directory: %w", err)
	}
	if err := os.WriteFile(indexPath, []byte(renderFallbackIndex(names)), 0o644); err != nil {
		return fmt.Errorf("write fallback index: %w", err)
	}
	return nil
}

func renderFallbackAssembly(asm config.FallbackAssembly) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s API Reference\n\n", asm.Name)
	fmt.Fprintf(&b, "*%s - XML generation unavailable*\n\n", FallbackMarker)
	fmt.Fprintf(&b, "## Overview\n\n%s\n\n", asm.Description)
	b.WriteString("## Key Classes\n\n")
	for _, class := range asm.KeyClasses {
		fmt.Fprintf(&b, "- **%s**\n", class)
	}
	b.WriteString("\n## Full Documentation\n\n")
	b.WriteString("Complete API documentation with method signatures and detailed descriptions ")
	b.WriteString("will be available when the .NET build pipeline is restored.\n")
	return b.String()
}

func renderFallbackIndex(assemblies []string) string {
	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	b.WriteString("*Using fallback documentation due to build issues*\n\n")
	b.WriteString("## Generated Documentation\n\n")

	sorted := make([]string, len(assemblies))
	copy(sorted, assemblies)
	sort.Strings(sorted)
	for _, asm := range sorted {
		fmt.Fprintf(&b, "- **[%s](./generated/%s/README.md)** - %s API documentation\n", asm, asm, asm)
	}

	b.WriteString(quickReference)
	b.WriteString(`
## Note on Documentation Status

This documentation is currently using fallback content due to .NET build pipeline issues.
Full XML-generated documentation will be restored once the build issues are resolved.
`)
	return b.String()
}
