package apigen

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/logfields"
	"github.com/belay-dotnet/docbuild/internal/xmldoc"
)

// ErrInsufficientQuality is returned when more than half of the successfully
// parsed files fall below the documentation density threshold and the caller
// has not opted into the fallback.
var ErrInsufficientQuality = errors.New("insufficient documentation quality")

// Options controls a generation run.
type Options struct {
	// BaseDir is the docs site root the output directories are relative to.
	BaseDir string
	// Versioned renders the uncapped versioned pages and the version index
	// instead of the capped single-version pages.
	Versioned bool
	// Versions lists known documentation versions, current first. Only used
	// when Versioned is set.
	Versions []string
	// FallbackOnLowQuality writes fallback pages instead of failing when the
	// quality gate trips.
	FallbackOnLowQuality bool
}

// Result summarizes one generation run.
type Result struct {
	RunID        string
	FilesFound   int
	Processed    int
	Failed       int
	LowQuality   int
	Assemblies   []string
	UsedFallback bool
}

// Generator turns located XML documentation exports into the site's API pages.
type Generator struct {
	cfg *config.Config
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run locates, parses and renders all XML documentation exports. Per-file
// parse failures are logged and skipped. When nothing usable is produced the
// configured fallback content is written instead and the run still succeeds;
// a run that parsed files but found most of them under-documented fails with
// ErrInsufficientQuality unless opts.FallbackOnLowQuality is set.
func (g *Generator) Run(opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	slog.Info("Starting API documentation generation", logfields.RunID(res.RunID))

	files, err := xmldoc.Locate(g.cfg.Source.Root, g.cfg.Source.Glob, g.cfg.Source.Exclude, g.cfg.Source.MaxFiles)
	if err != nil {
		return res, fmt.Errorf("locate XML files: %w", err)
	}
	res.FilesFound = len(files)
	slog.Info("Located XML documentation files", logfields.Files(len(files)))

	if len(files) == 0 {
		slog.Warn("No XML documentation files found, writing fallback documentation")
		res.UsedFallback = true
		return res, WriteFallback(g.cfg, opts.BaseDir)
	}

	var assemblies []*xmldoc.Assembly
	for _, path := range files {
		asm, err := xmldoc.ParseFile(path)
		if err != nil {
			res.Failed++
			slog.Warn("Skipping unparsable XML file", logfields.Path(path), logfields.Error(err))
			continue
		}
		res.Processed++

		stats := asm.Quality(g.cfg.Quality.MinSummaryLength)
		if stats.LowQuality(g.cfg.Quality.MinDocumentedRatio) {
			res.LowQuality++
			slog.Warn("Low documentation quality",
				logfields.Assembly(asm.Name),
				slog.Int("documented", stats.Documented),
				slog.Int("total", stats.Total))
		}
		assemblies = append(assemblies, asm)
	}

	if res.Processed == 0 {
		slog.Warn("No XML files parsed successfully, writing fallback documentation")
		res.UsedFallback = true
		return res, WriteFallback(g.cfg, opts.BaseDir)
	}

	if res.LowQuality > res.Processed/2 {
		if !opts.FallbackOnLowQuality {
			return res, fmt.Errorf("%w: %d of %d files below density threshold",
				ErrInsufficientQuality, res.LowQuality, res.Processed)
		}
		slog.Warn("Quality gate tripped, writing fallback documentation",
			slog.Int("low_quality", res.LowQuality), slog.Int("processed", res.Processed))
		res.UsedFallback = true
		return res, WriteFallback(g.cfg, opts.BaseDir)
	}

	if opts.Versioned {
		err = g.writeVersioned(assemblies, opts, res)
	} else {
		err = g.writeSimple(assemblies, opts, res)
	}
	if err != nil {
		return res, err
	}

	sort.Strings(res.Assemblies)
	slog.Info("API documentation generation complete",
		logfields.RunID(res.RunID),
		logfields.Files(res.Processed),
		slog.Int("assemblies", len(res.Assemblies)))
	return res, nil
}

func (g *Generator) writeSimple(assemblies []*xmldoc.Assembly, opts Options, res *Result) error {
	for _, asm := range assemblies {
		doc := xmldoc.Aggregate(asm)
		page := renderAssembly(doc, g.cfg.Limits)
		if err := g.writeAssemblyPage(opts.BaseDir, g.cfg.Output.GeneratedDir, asm.Name, page); err != nil {
			return err
		}
		res.Assemblies = append(res.Assemblies, asm.Name)
		slog.Info("Generated API documentation",
			logfields.Assembly(asm.Name), logfields.Types(len(doc.Types)))
	}
	return g.writeIndex(opts.BaseDir, RenderIndex(res.Assemblies))
}

func (g *Generator) writeVersioned(assemblies []*xmldoc.Assembly, opts Options, res *Result) error {
	current := "main"
	if len(opts.Versions) > 0 {
		current = opts.Versions[0]
	}

	// versioned pages live under their own version directory so released
	// versions can coexist with the current one
	versionDir := filepath.Join(g.cfg.Output.VersionsDir, current)

	for _, asm := range assemblies {
		doc := xmldoc.Aggregate(asm)
		page := RenderVersionedAssembly(doc, current)
		for _, anchor := range DanglingAnchors(page) {
			slog.Warn("Dangling table of contents anchor",
				logfields.Assembly(asm.Name), slog.String("anchor", anchor))
		}
		if err := g.writeAssemblyPage(opts.BaseDir, versionDir, asm.Name, page); err != nil {
			return err
		}
		res.Assemblies = append(res.Assemblies, asm.Name)
		slog.Info("Generated versioned API documentation",
			logfields.Assembly(asm.Name),
			logfields.Version(current),
			logfields.Types(len(doc.Types)))
	}

	sort.Strings(res.Assemblies)
	if err := g.writeIndex(opts.BaseDir, RenderVersionedIndex(res.Assemblies, current, len(opts.Versions))); err != nil {
		return err
	}

	versionsPath := filepath.Join(opts.BaseDir, g.cfg.Output.APIDir, "versions.md")
	if err := os.WriteFile(versionsPath, []byte(RenderVersionsIndex(opts.Versions, current)), 0o644); err != nil {
		return fmt.Errorf("write versions index: %w", err)
	}
	return nil
}

func (g *Generator) writeAssemblyPage(baseDir, generatedDir, assembly, page string) error {
	dir := filepath.Join(baseDir, generatedDir, assembly)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create assembly directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(page), 0o644); err != nil {
		return fmt.Errorf("write assembly page for %s: %w", assembly, err)
	}
	return nil
}

func (g *Generator) writeIndex(baseDir, content string) error {
	dir := filepath.Join(baseDir, g.cfg.Output.APIDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create api directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.md"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write api index: %w", err)
	}
	return nil
}
