package doctor

// Check inspects one aspect of the installation.
type Check interface {
	Run() *CheckResult
}

// Report is the outcome of a pm doctor run.
type Report struct {
	Results []*CheckResult `json:"results"`
	Summary Summary        `json:"summary"`
}

// Run executes checks in order. Later checks may read state gathered by
// earlier ones, as ProjectPathsCheck does with SettingsFileCheck.
func Run(checks ...Check) *Report {
	report := &Report{Results: make([]*CheckResult, 0, len(checks))}
	for _, c := range checks {
		result := c.Run()
		report.Results = append(report.Results, result)
		report.Summary.count(result.Status)
	}
	return report
}

// Worst returns the highest severity found, or SeverityPass for an empty
// report.
func (r *Report) Worst() Severity {
	worst := SeverityPass
	for _, res := range r.Results {
		worst = max(worst, res.Status)
	}
	return worst
}
