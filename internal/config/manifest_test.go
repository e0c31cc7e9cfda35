package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest_ResolvesRelativeOptionsAndSchema(t *testing.T) {
	dir := t.TempDir()
	man := []byte(`schema_version: v1
factory: flux-core
options: factory.yml
grpc_port: 7070
metrics_port: 9100
`)
	if err := os.WriteFile(filepath.Join(dir, "manifest.yml"), man, 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, abs, err := LoadManifest(filepath.Join(dir, "manifest.yml"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.SchemaVersion != SupportedSchema {
		t.Fatalf("want schema %s, got %s", SupportedSchema, m.SchemaVersion)
	}
	if m.Factory != "flux-core" || m.GRPCPort != 7070 || m.MetricsPort != 9100 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	if want := filepath.Join(dir, "factory.yml"); abs != want {
		t.Fatalf("want options path %q, got %q", want, abs)
	}
}

func TestLoadManifest_DefaultsSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yml")
	if err := os.WriteFile(path, []byte("factory: flux-core\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	m, abs, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.SchemaVersion != SupportedSchema {
		t.Fatalf("want default schema %s, got %q", SupportedSchema, m.SchemaVersion)
	}
	if abs != "" {
		t.Fatalf("want empty options path, got %q", abs)
	}
}

func TestLoadManifest_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yml")
	if err := os.WriteFile(path, []byte("schema_version: v999\nfactory: flux-core\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}

func TestLoadManifest_MissingFactory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yml")
	if err := os.WriteFile(path, []byte("schema_version: v1\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for missing factory")
	}
}
