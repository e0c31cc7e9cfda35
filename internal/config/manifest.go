package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const SupportedSchema = "v1"

// Manifest tells the host which factory to load and where it is served.
type Manifest struct {
	SchemaVersion string `yaml:"schema_version"`
	Factory       string `yaml:"factory"`
	Options       string `yaml:"options"` // path to the factory's config
	GRPCPort      int    `yaml:"grpc_port"`
	MetricsPort   int    `yaml:"metrics_port"`
}

// LoadManifest parses a host manifest, validates schema_version, and
// returns it with the options path made absolute (if set).
func LoadManifest(path string) (Manifest, string, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, "", err
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, "", err
	}
	if m.SchemaVersion == "" {
		m.SchemaVersion = SupportedSchema
	}
	if m.SchemaVersion != SupportedSchema {
		return m, "", fmt.Errorf("manifest schema_version %q not supported (want %q)", m.SchemaVersion, SupportedSchema)
	}
	if m.Factory == "" {
		return m, "", fmt.Errorf("manifest %s: factory is required", path)
	}
	optPath := m.Options
	if optPath != "" && !filepath.IsAbs(optPath) {
		optPath = filepath.Join(filepath.Dir(path), optPath)
	}
	return m, optPath, nil
}
