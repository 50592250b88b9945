package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy names the artifact files the gate evaluates and tunes the
// hardening control. A policy file is optional; the built-in defaults match
// the pipeline's standard scanner output names.
type Policy struct {
	SecretReport    string `yaml:"secret_report"`
	VulnImageReport string `yaml:"vuln_image_report"`
	VulnFSReport    string `yaml:"vuln_fs_report"`
	HardeningReport string `yaml:"hardening_report"`
	InventoryReport string `yaml:"inventory_report"`
	ReportFile      string `yaml:"report_file"`

	// HardeningFailLevels are the hardening finding levels that fail SEC-03.
	HardeningFailLevels []string `yaml:"hardening_fail_levels"`
}

// DefaultPolicy returns the built-in policy used when no file is present.
func DefaultPolicy() Policy {
	return Policy{
		SecretReport:        "gitleaks-report.json",
		VulnImageReport:     "trivy-image.json",
		VulnFSReport:        "trivy-fs.json",
		HardeningReport:     "dockle-report.json",
		InventoryReport:     "sbom.json",
		ReportFile:          "security-report.md",
		HardeningFailLevels: []string{"FATAL", "WARN", "INFO"},
	}
}

// LoadPolicy reads a YAML policy file over the defaults. A missing file is
// not an error; an unreadable or malformed one is.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, err
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	// Levels are compared uppercased everywhere else.
	for i, lvl := range p.HardeningFailLevels {
		p.HardeningFailLevels[i] = strings.ToUpper(lvl)
	}
	return p, nil
}
