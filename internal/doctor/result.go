// Package doctor provides diagnostic checks for pm's settings and
// preferences.
package doctor

// Severity grades a check result. Higher is worse.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText renders the severity by name in JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckResult is what one check found.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"` // settings, projects, editors or config
	Status   Severity `json:"status"`
	Message  string   `json:"message"`

	// Details carries the offending path or names for --json consumers.
	Details map[string]any `json:"details,omitempty"`

	// FixHint is a pm or shell command that resolves the problem.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) count(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}
