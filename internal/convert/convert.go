package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/belay-dotnet/docbuild/internal/logfields"
)

var (
	htmlLinkSuffixRe = regexp.MustCompile(`\.html\)`)
	jsImportRe       = regexp.MustCompile(`(?m)^\s*import\s+.*from.*["'].*["'];?\s*$`)
	jsExportRe       = regexp.MustCompile(`(?m)^\s*export\s+.*$`)
	linkRe           = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	blankRunRe       = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Cleanup normalizes converted Markdown for the site generator: link targets
// lose their .html extension, leftover JS import/export lines are dropped
// (the generator treats them as script), links are reduced to their text, and
// blank-line runs are collapsed.
func Cleanup(content string) string {
	content = htmlLinkSuffixRe.ReplaceAllString(content, ")")
	content = jsImportRe.ReplaceAllString(content, "")
	content = jsExportRe.ReplaceAllString(content, "")
	content = linkRe.ReplaceAllString(content, "$1")
	for {
		collapsed := blankRunRe.ReplaceAllString(content, "\n\n")
		if collapsed == content {
			break
		}
		content = collapsed
	}
	return strings.TrimLeft(content, "\n")
}

// Result summarizes one tree conversion.
type Result struct {
	Found     int
	Converted int
	Failed    int
}

// Tree converts every .html file under srcDir (except toc.html) into a .md
// file in dstDir. Per-file failures are logged and counted, not fatal.
func Tree(srcDir, dstDir string) (*Result, error) {
	entries, err := filepath.Glob(filepath.Join(srcDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list HTML files: %w", err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	res := &Result{}
	for _, path := range entries {
		if filepath.Base(path) == "toc.html" {
			continue
		}
		res.Found++
		if err := File(path, dstDir); err != nil {
			res.Failed++
			slog.Warn("Failed to convert HTML file", logfields.Path(path), logfields.Error(err))
			continue
		}
		res.Converted++
	}

	slog.Info("HTML conversion complete",
		logfields.Path(dstDir),
		slog.Int("converted", res.Converted),
		slog.Int("failed", res.Failed))
	return res, nil
}

// File converts one HTML file into dstDir, named after its stem.
func File(htmlPath, dstDir string) error {
	f, err := os.Open(htmlPath)
	if err != nil {
		return err
	}
	defer f.Close()

	md, err := ToMarkdown(f)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath))
	out := filepath.Join(dstDir, stem+".md")
	return os.WriteFile(out, []byte(Cleanup(md)), 0o644)
}
