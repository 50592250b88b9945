package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicyMissingFileUsesDefaults(t *testing.T) {
	p, err := LoadPolicy(filepath.Join(t.TempDir(), "policy.yaml"))
	if err != nil {
		t.Fatalf("a missing policy file is not an error: %v", err)
	}
	def := DefaultPolicy()
	if p.SecretReport != def.SecretReport || p.ReportFile != def.ReportFile {
		t.Errorf("expected defaults, got %+v", p)
	}
	if len(p.HardeningFailLevels) != len(def.HardeningFailLevels) {
		t.Errorf("expected default fail levels, got %v", p.HardeningFailLevels)
	}
}

func TestLoadPolicyOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := "report_file: gate-report.md\nhardening_fail_levels: [fatal, warn]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ReportFile != "gate-report.md" {
		t.Errorf("expected report file override, got %s", p.ReportFile)
	}
	if len(p.HardeningFailLevels) != 2 || p.HardeningFailLevels[0] != "FATAL" || p.HardeningFailLevels[1] != "WARN" {
		t.Errorf("fail levels must be uppercased, got %v", p.HardeningFailLevels)
	}
	// Untouched fields keep their defaults.
	if p.SecretReport != DefaultPolicy().SecretReport {
		t.Errorf("unset fields must keep defaults, got %s", p.SecretReport)
	}
}

func TestLoadPolicyMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte("report_file: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPolicy(path); err == nil {
		t.Error("malformed policy file must be an error")
	}
}
