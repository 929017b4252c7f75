package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats a validation report for output.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// TextFormatter formats reports as human-readable text.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter { return &TextFormatter{} }

// Format outputs the report in human-readable text form.
func (f *TextFormatter) Format(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintf(w, "Validating deployment in: %s\n", report.SiteDir); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	for _, issue := range report.Issues {
		icon := "ℹ"
		switch issue.Severity {
		case SeverityError:
			icon = "✗"
		case SeverityWarning:
			icon = "⚠"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n  %s: %s\n", icon, issue.Path, issue.Severity, issue.Message); err != nil {
			return err
		}
		if issue.Fix != "" {
			if _, err := fmt.Fprintf(w, "  Fix: %s\n", issue.Fix); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results:\n  %d checks performed\n", report.Checks); err != nil {
		return err
	}
	if n := report.ErrorCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d error%s (blocks deployment)\n", n, pluralize(n)); err != nil {
			return err
		}
	}
	if n := report.WarningCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d warning%s (should fix)\n", n, pluralize(n)); err != nil {
			return err
		}
	}

	msg := "✨ Site is ready to deploy!"
	if report.HasErrors() {
		msg = "❌ Site has errors and should not be deployed."
	} else if report.WarningCount() > 0 {
		msg = "⚠️  Site is deployable but has warnings."
	}
	_, err := fmt.Fprintf(w, "\n%s\n", msg)
	return err
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// JSONFormatter formats reports as machine-readable JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

type jsonIssue struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Check    string `json:"check"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

type jsonReport struct {
	SiteDir  string      `json:"site_dir"`
	Checks   int         `json:"checks"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
	Issues   []jsonIssue `json:"issues"`
}

// Format outputs the report as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, report *Report) error {
	out := jsonReport{
		SiteDir:  report.SiteDir,
		Checks:   report.Checks,
		Errors:   report.ErrorCount(),
		Warnings: report.WarningCount(),
		Issues:   make([]jsonIssue, 0, len(report.Issues)),
	}
	for _, issue := range report.Issues {
		out.Issues = append(out.Issues, jsonIssue{
			Path:     issue.Path,
			Severity: issue.Severity.String(),
			Check:    issue.Check,
			Message:  issue.Message,
			Fix:      issue.Fix,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
