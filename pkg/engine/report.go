package engine

import (
	"fmt"
	"strings"
	"time"
)

// PipelineContext is the CI metadata block embedded in the report. Empty
// fields render as "n/a" rather than being dropped.
type PipelineContext struct {
	RunID      string
	Commit     string
	Ref        string
	Repository string
	RunURL     string
}

// Report is the input to Render. Overall status is derived from the
// verdicts at render time, never stored.
type Report struct {
	GeneratedAt time.Time
	Context     PipelineContext
	Verdicts    []Verdict
}

// Render produces the markdown compliance report. It is a pure function:
// identical inputs yield byte-identical output.
func Render(r Report) string {
	overall := OverallStatus(r.Verdicts)

	var sb strings.Builder
	sb.WriteString("# Container Security Compliance Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.UTC().Format(time.RFC3339)))

	sb.WriteString(fmt.Sprintf("- Run ID: %s\n", orNA(r.Context.RunID)))
	sb.WriteString(fmt.Sprintf("- Commit: %s\n", orNA(r.Context.Commit)))
	sb.WriteString(fmt.Sprintf("- Ref: %s\n", orNA(r.Context.Ref)))
	sb.WriteString(fmt.Sprintf("- Repository: %s\n", orNA(r.Context.Repository)))
	sb.WriteString(fmt.Sprintf("- Run URL: %s\n", orNA(r.Context.RunURL)))

	sb.WriteString("\n| Control | Status | Details |\n")
	sb.WriteString("|---------|--------|---------|\n")
	for _, v := range r.Verdicts {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", v.ID, statusBadge(v.Status), escapeCell(v.Details)))
	}

	sb.WriteString(fmt.Sprintf("\nOverall status: **%s**\n", overall))

	var failed []Verdict
	for _, v := range r.Verdicts {
		if v.Status != StatusPass {
			failed = append(failed, v)
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\n## Failed Controls\n\n")
		for _, v := range failed {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", v.ID, v.Details))
		}
	}
	return sb.String()
}

func statusBadge(s Status) string {
	if s == StatusPass {
		return "✅ PASS"
	}
	return "❌ FAIL"
}

// escapeCell keeps verdict details from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
