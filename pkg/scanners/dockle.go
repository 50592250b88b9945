package scanners

import (
	"encoding/json"
	"strings"
)

// HardeningSummary counts hardening findings per level (FATAL, WARN, INFO,
// PASS, ...). Levels are free-form and uppercased on ingestion. An empty but
// non-nil Counts means the scan was readable and clean.
type HardeningSummary struct {
	Counts map[string]int
}

type leveledEntry struct {
	Level string `json:"level"`
}

// SummarizeHardening derives level counts from a dockle-style report. Three
// shapes are recognized and merged: a top-level array of leveled findings
// (each optionally carrying a nested details array of leveled sub-findings),
// an object with a details array, and an object with a single scalar level.
// It returns nil when no shape applies.
func SummarizeHardening(raw []byte) *HardeningSummary {
	counts := make(map[string]int)
	recognized := false

	// Shape: top-level array of findings with optional nested sub-findings.
	var list []struct {
		Level   string         `json:"level"`
		Details []leveledEntry `json:"details"`
	}
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		recognized = true
		for _, finding := range list {
			if finding.Level != "" {
				counts[strings.ToUpper(finding.Level)]++
			}
			for _, sub := range finding.Details {
				if sub.Level != "" {
					counts[strings.ToUpper(sub.Level)]++
				}
			}
		}
	}

	// Shapes: object with a details array, object with a scalar level.
	// Both can apply to the same document; their counts merge.
	var obj struct {
		Level   string          `json:"level"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Details != nil {
			var entries []leveledEntry
			if err := json.Unmarshal(obj.Details, &entries); err == nil {
				recognized = true
				for _, entry := range entries {
					if entry.Level != "" {
						counts[strings.ToUpper(entry.Level)]++
					}
				}
			}
		}
		if obj.Level != "" {
			recognized = true
			counts[strings.ToUpper(obj.Level)]++
		}
	}

	if !recognized {
		return nil
	}
	return &HardeningSummary{Counts: counts}
}
