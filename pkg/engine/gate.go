package engine

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/user/secgate/pkg/artifacts"
	"github.com/user/secgate/pkg/config"
	"github.com/user/secgate/pkg/logging"
	"github.com/user/secgate/pkg/scanners"
)

// Gate runs one full evaluation pass: read every artifact, derive the
// summaries, evaluate the controls, persist the report.
type Gate struct {
	Store   *artifacts.Store
	Policy  config.Policy
	Context PipelineContext
	Now     func() time.Time
}

// Outcome is everything the caller needs to emit the document and decide
// the process exit status.
type Outcome struct {
	Document string
	Path     string
	Written  bool
	Verdicts []Verdict
	Overall  Status
}

// Run executes the gate. It never returns an error; every failure mode ends
// up in a verdict and in the outcome.
func (g *Gate) Run() Outcome {
	// Best effort: on a fresh runner nothing may have created the directory
	// yet. The controls decide what an empty directory means.
	if err := os.MkdirAll(g.Store.Dir, 0o755); err != nil {
		logging.Infof("[Gate] could not ensure artifact directory %s: %v", g.Store.Dir, err)
	}

	names := []string{
		g.Policy.SecretReport,
		g.Policy.VulnImageReport,
		g.Policy.VulnFSReport,
		g.Policy.HardeningReport,
		g.Policy.InventoryReport,
	}
	results := make([]artifacts.ReadResult, len(names))

	// The reads are independent; the Wait is the barrier before any
	// control evaluation starts.
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = g.Store.Read(name)
		}(i, name)
	}
	wg.Wait()

	ev := Evidence{
		Secrets:             results[0],
		VulnImage:           results[1],
		VulnFS:              results[2],
		Hardening:           results[3],
		Inventory:           results[4],
		HardeningFailLevels: g.Policy.HardeningFailLevels,
	}
	if ev.Secrets.Parsed {
		ev.SecretCount, ev.SecretCountErr = scanners.CountSecretFindings(ev.Secrets.Raw)
	}
	if ev.VulnImage.Parsed {
		ev.VulnImageSummary = scanners.SummarizeVulnerabilities(ev.VulnImage.Raw)
	}
	if ev.VulnFS.Parsed {
		ev.VulnFSSummary = scanners.SummarizeVulnerabilities(ev.VulnFS.Raw)
	}
	if ev.Hardening.Parsed {
		ev.HardeningSummary = scanners.SummarizeHardening(ev.Hardening.Raw)
	}

	verdicts := EvaluateControls(ev)
	for _, v := range verdicts {
		logging.Debugf("[Gate] %s %s: %s", v.ID, v.Status, v.Details)
	}

	reportPath := filepath.Join(g.Store.Dir, g.Policy.ReportFile)
	generated := g.Now()

	// The persisted document has to be rendered before the write it
	// reports on can happen, so it carries a tentative SEC-06 PASS. The
	// final document re-evaluates SEC-06 from the actual outcome; when the
	// write succeeds the two renders are byte-identical.
	tentative := make([]Verdict, len(verdicts), len(verdicts)+1)
	copy(tentative, verdicts)
	tentative = append(tentative, PersistenceVerdict(reportPath, nil))
	document := Render(Report{GeneratedAt: generated, Context: g.Context, Verdicts: tentative})

	writeErr := os.WriteFile(reportPath, []byte(document), 0o644)
	if writeErr != nil {
		logging.Infof("[Gate] report write failed: %v", writeErr)
	}

	final := make([]Verdict, len(verdicts), len(verdicts)+1)
	copy(final, verdicts)
	final = append(final, PersistenceVerdict(reportPath, writeErr))
	finalDoc := Render(Report{GeneratedAt: generated, Context: g.Context, Verdicts: final})

	return Outcome{
		Document: finalDoc,
		Path:     reportPath,
		Written:  writeErr == nil,
		Verdicts: final,
		Overall:  OverallStatus(final),
	}
}
