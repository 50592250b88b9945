package scanners

import "strings"

// Severity labels used by the vulnerability scanners.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
	SeverityUnknown  = "UNKNOWN"
)

// SeverityOrder lists the known labels worst-first, the order reports use.
var SeverityOrder = []string{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityUnknown,
}

// NormalizeSeverity uppercases a scanner's severity label and folds anything
// outside the known set (including a missing label) into UNKNOWN.
func NormalizeSeverity(label string) string {
	upper := strings.ToUpper(strings.TrimSpace(label))
	for _, known := range SeverityOrder {
		if upper == known {
			return known
		}
	}
	return SeverityUnknown
}
