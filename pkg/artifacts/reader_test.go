package artifacts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	res := store.Read("gitleaks-report.json")
	if res.Found {
		t.Errorf("expected Found=false for missing file, got %+v", res)
	}
	if res.Parsed {
		t.Errorf("expected Parsed=false for missing file, got %+v", res)
	}
	if res.Err == "" {
		t.Error("expected a captured error for missing file")
	}
}

func TestReadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := NewStore(dir).Read("broken.json")
	if !res.Found {
		t.Error("expected Found=true for existing file")
	}
	if res.Parsed {
		t.Error("expected Parsed=false for invalid JSON")
	}
	if res.Raw != nil {
		t.Error("Raw must only be set when Parsed")
	}
}

func TestReadEmptyFileIsInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "empty.json"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	res := NewStore(dir).Read("empty.json")
	if !res.Found || res.Parsed {
		t.Errorf("empty file should be found but not parsed, got %+v", res)
	}
}

func TestReadValidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sbom.json"), []byte(`{"artifacts":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	res := NewStore(dir).Read("sbom.json")
	if !res.Found || !res.Parsed {
		t.Fatalf("expected found and parsed, got %+v", res)
	}
	if res.Err != "" {
		t.Errorf("unexpected error: %s", res.Err)
	}
	if string(res.Raw) != `{"artifacts":[]}` {
		t.Errorf("Raw should hold the file content, got %q", res.Raw)
	}
}
