package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/belay-dotnet/docbuild/internal/apigen"
	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/logfields"
	"github.com/belay-dotnet/docbuild/internal/release"
	"github.com/belay-dotnet/docbuild/internal/versioning"
	"github.com/belay-dotnet/docbuild/internal/xmldoc"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output               string `short:"o" help:"Docs site root the output is written under" default:"."`
	Glob                 string `help:"Override the XML file glob pattern"`
	Versioned            bool   `help:"Render uncapped versioned pages with a version selector"`
	Watch                bool   `short:"w" help:"Keep running and regenerate when XML exports change"`
	FallbackOnLowQuality bool   `name:"fallback-on-low-quality" help:"Write fallback pages instead of failing the quality gate"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config)
	if err != nil {
		return err
	}
	if g.Glob != "" {
		cfg.Source.Glob = g.Glob
	}

	opts := apigen.Options{
		BaseDir:              g.Output,
		Versioned:            g.Versioned,
		FallbackOnLowQuality: g.FallbackOnLowQuality,
	}
	if g.Versioned {
		opts.Versions = resolveVersions(cfg)
	}

	gen := apigen.NewGenerator(cfg)
	if err := runGenerate(gen, opts); err != nil {
		return err
	}
	if !g.Watch {
		return nil
	}
	return g.watch(cfg, gen, opts)
}

func runGenerate(gen *apigen.Generator, opts apigen.Options) error {
	res, err := gen.Run(opts)
	if err != nil {
		return fmt.Errorf("generate API documentation: %w", err)
	}
	if res.UsedFallback {
		fmt.Println("⚠️ Generated fallback API documentation")
	} else {
		fmt.Printf("✅ Generated API documentation for %d assemblies (%d/%d files)\n",
			len(res.Assemblies), res.Processed, res.FilesFound)
	}
	return nil
}

// resolveVersions builds the version list: the checkout's newest tag first,
// then released tags from GitHub. A failed release fetch degrades to the
// local version only.
func resolveVersions(cfg *config.Config) []string {
	current := versioning.LocalVersion(cfg.Source.Root)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	releases, err := release.NewClient(cfg.Releases.APIURL, cfg.Releases.Repository).List(ctx)
	if err != nil {
		slog.Warn("Could not fetch releases, using local version only", logfields.Error(err))
	}
	return versioning.VersionList(current, release.Tags(releases))
}

// watch reruns generation whenever a matched XML export is rewritten. The
// build writes files in place, so watching the containing directories is
// enough.
func (g *GenerateCmd) watch(cfg *config.Config, gen *apigen.Generator, opts apigen.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	files, err := xmldoc.Locate(cfg.Source.Root, cfg.Source.Glob, cfg.Source.Exclude, cfg.Source.MaxFiles)
	if err != nil {
		return err
	}
	dirs := map[string]struct{}{}
	for _, f := range files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	if len(dirs) == 0 {
		dirs[cfg.Source.Root] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		slog.Info("Watching for XML changes", logfields.Path(dir))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event := <-watcher.Events:
			if filepath.Ext(event.Name) != ".xml" {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			slog.Info("XML export changed, regenerating", logfields.Path(event.Name))
			if err := runGenerate(gen, opts); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
		case err := <-watcher.Errors:
			slog.Warn("Watcher error", logfields.Error(err))
		case sig := <-sigCh:
			slog.Info("Shutting down watch mode", slog.String("signal", sig.String()))
			return nil
		}
	}
}
