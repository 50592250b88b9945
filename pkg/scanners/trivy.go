package scanners

import "encoding/json"

// VulnSummary is the severity histogram derived from one vulnerability scan.
// Total always equals the sum of Counts.
type VulnSummary struct {
	Total  int
	Counts map[string]int
}

// trivyReport is the subset of the trivy JSON report the gate cares about.
type trivyReport struct {
	Results []struct {
		Vulnerabilities []struct {
			Severity string `json:"Severity"`
		} `json:"Vulnerabilities"`
	} `json:"Results"`
}

// SummarizeVulnerabilities derives a severity histogram from a trivy-style
// report: an object whose Results array holds per-target entries, each with
// an optional Vulnerabilities array. It returns nil when the top-level shape
// is not recognized; "no summary" and "zero findings" are different states.
func SummarizeVulnerabilities(raw []byte) *VulnSummary {
	var report trivyReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	if report.Results == nil {
		return nil
	}

	summary := &VulnSummary{Counts: make(map[string]int)}
	for _, result := range report.Results {
		for _, vuln := range result.Vulnerabilities {
			summary.Counts[NormalizeSeverity(vuln.Severity)]++
			summary.Total++
		}
	}
	return summary
}
