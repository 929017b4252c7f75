// Package validate checks a built documentation site before deployment.
package validate

// Severity indicates the importance level of a validation issue.
type Severity int

const (
	// SeverityInfo indicates informational findings.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that degrade the site but don't block deployment.
	SeverityWarning
	// SeverityError indicates issues that make the site unfit to deploy.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue is a single validation finding.
type Issue struct {
	Path     string   // site-relative path the finding refers to
	Severity Severity // finding severity
	Check    string   // check identifier (e.g. "critical-page")
	Message  string   // brief description
	Fix      string   // suggested remediation, if any
}

// Report contains all findings from one validation run.
type Report struct {
	SiteDir string
	Issues  []Issue
	Checks  int // total checks performed
}

func (r *Report) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// HasErrors reports whether any error-level findings exist.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-level findings.
func (r *Report) WarningCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
