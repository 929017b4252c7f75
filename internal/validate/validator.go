package validate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/logfields"
)

// fallbackMarker matches the placeholder pages the generator writes when XML
// extraction is unavailable. Deploying them is allowed but worth flagging.
const fallbackMarker = "Fallback documentation"

// progressMarker identifies stub pages that were published before their
// content was written.
const progressMarker = "Documentation in Progress"

// minPageBytes is the size below which a page is considered thin.
const minPageBytes = 500

// Validator checks a built site tree against the configured expectations.
type Validator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Run validates the built site under siteDir and returns the findings. Only
// an unreadable site directory is an error; page-level problems are findings.
func (v *Validator) Run(siteDir string) (*Report, error) {
	if info, err := os.Stat(siteDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("site directory not found: %s", siteDir)
	}

	report := &Report{SiteDir: siteDir}
	v.checkCriticalPages(siteDir, report)
	v.checkAPIDocs(siteDir, report)
	v.checkNavigation(siteDir, report)
	v.checkAssets(siteDir, report)
	v.checkContentQuality(siteDir, report)

	slog.Info("Deployment validation complete",
		logfields.Path(siteDir),
		slog.Int("checks", report.Checks),
		slog.Int("errors", report.ErrorCount()),
		slog.Int("warnings", report.WarningCount()))
	return report, nil
}

// checkCriticalPages verifies the pages the site cannot ship without.
func (v *Validator) checkCriticalPages(siteDir string, report *Report) {
	for _, page := range v.cfg.Site.CriticalPages {
		report.Checks++
		if _, err := os.Stat(filepath.Join(siteDir, page)); err != nil {
			report.add(Issue{
				Path:     page,
				Severity: SeverityError,
				Check:    "critical-page",
				Message:  "critical page is missing from the built site",
				Fix:      "check the site build output for this route",
			})
		}
	}
}

// checkAPIDocs verifies each expected assembly has a rendered reference page
// and flags fallback content.
func (v *Validator) checkAPIDocs(siteDir string, report *Report) {
	for _, asm := range v.cfg.Site.ExpectedAssemblies {
		report.Checks++
		page := filepath.Join("api", "generated", asm, "README.html")
		data, err := os.ReadFile(filepath.Join(siteDir, page))
		if err != nil {
			// a missing assembly page degrades the site but does not block
			// deployment; the fallback pipeline covers the gap
			report.add(Issue{
				Path:     page,
				Severity: SeverityWarning,
				Check:    "api-assembly",
				Message:  fmt.Sprintf("API documentation for %s is missing", asm),
				Fix:      "run the generate command before building the site",
			})
			continue
		}
		if strings.Contains(string(data), fallbackMarker) {
			report.add(Issue{
				Path:     page,
				Severity: SeverityWarning,
				Check:    "api-fallback",
				Message:  fmt.Sprintf("API documentation for %s is fallback content", asm),
				Fix:      "restore the XML documentation build",
			})
		}
	}
}

// checkNavigation parses the home page and verifies every nav section is
// reachable from it.
func (v *Validator) checkNavigation(siteDir string, report *Report) {
	f, err := os.Open(filepath.Join(siteDir, "index.html"))
	if err != nil {
		// absence is already reported by the critical page check
		return
	}
	defer f.Close()

	hrefs, err := extractHrefs(f)
	if err != nil {
		report.add(Issue{
			Path:     "index.html",
			Severity: SeverityError,
			Check:    "navigation",
			Message:  "home page is not parseable HTML",
		})
		return
	}

	for _, section := range v.cfg.Site.NavSections {
		report.Checks++
		if !linksToSection(hrefs, section) {
			report.add(Issue{
				Path:     "index.html",
				Severity: SeverityWarning,
				Check:    "navigation",
				Message:  fmt.Sprintf("no navigation link to the %s section", section),
			})
		}
	}
}

// checkAssets verifies the static asset paths made it into the build.
func (v *Validator) checkAssets(siteDir string, report *Report) {
	for _, asset := range v.cfg.Site.AssetPaths {
		report.Checks++
		if _, err := os.Stat(filepath.Join(siteDir, asset)); err != nil {
			report.add(Issue{
				Path:     asset,
				Severity: SeverityWarning,
				Check:    "asset",
				Message:  "expected asset path is missing",
			})
		}
	}
}

// checkContentQuality flags important pages that are thin or still stubs.
func (v *Validator) checkContentQuality(siteDir string, report *Report) {
	for _, page := range v.cfg.Site.ImportantPages {
		report.Checks++
		data, err := os.ReadFile(filepath.Join(siteDir, page))
		if err != nil {
			continue // existence is covered elsewhere
		}
		if len(data) < minPageBytes {
			report.add(Issue{
				Path:     page,
				Severity: SeverityWarning,
				Check:    "content-quality",
				Message:  fmt.Sprintf("page is only %d bytes", len(data)),
			})
		}
		if strings.Contains(string(data), progressMarker) {
			report.add(Issue{
				Path:     page,
				Severity: SeverityWarning,
				Check:    "content-quality",
				Message:  "page still carries an in-progress marker",
			})
		}
	}
}
