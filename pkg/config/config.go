package config

import (
	"fmt"
	"os"
)

// DefaultArtifactDir is where the pipeline drops scanner outputs when no
// override is given.
const DefaultArtifactDir = "security-artifacts"

// Config holds everything the gate reads from the environment.
type Config struct {
	ArtifactDir string
	Pipeline    Pipeline
}

// Pipeline carries the CI metadata shown in the report context block.
// Every field is independently optional.
type Pipeline struct {
	Commit     string
	Ref        string
	Repository string
	RunID      string
	ServerURL  string
}

// Load builds the configuration from environment variables. It never fails;
// missing values fall back to defaults or stay empty.
func Load() Config {
	dir := os.Getenv("SECGATE_ARTIFACT_DIR")
	if dir == "" {
		dir = DefaultArtifactDir
	}
	return Config{
		ArtifactDir: dir,
		Pipeline: Pipeline{
			Commit:     os.Getenv("GITHUB_SHA"),
			Ref:        os.Getenv("GITHUB_REF"),
			Repository: os.Getenv("GITHUB_REPOSITORY"),
			RunID:      os.Getenv("GITHUB_RUN_ID"),
			ServerURL:  os.Getenv("GITHUB_SERVER_URL"),
		},
	}
}

// RunURL builds the link to the pipeline run, or returns "" when any part
// of the context needed for it is missing.
func (p Pipeline) RunURL() string {
	if p.ServerURL == "" || p.Repository == "" || p.RunID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/actions/runs/%s", p.ServerURL, p.Repository, p.RunID)
}
