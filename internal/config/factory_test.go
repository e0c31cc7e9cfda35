package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/youwol/flux-core/pipeline"
)

func TestLoadFactoryConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factory.yml")
	raw := []byte(`schema_version: v1
name: flux-core
description: reactive module-flow library
tags: [typescript, library]
options:
  target: web
  node_env: production
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := LoadFactoryConfig(path)
	require.NoError(t, err)

	want := pipeline.Config{
		Name:        "flux-core",
		Description: "reactive module-flow library",
		Tags:        []string{"typescript", "library"},
		Options:     map[string]string{"target": "web", "node_env": "production"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFactoryConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factory.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\noptions:\n  target: web\n"), 0o644))

	t.Setenv("FLUX_PIPELINE__NAME", "from-env")
	t.Setenv("FLUX_PIPELINE__OPTIONS__TARGET", "node")

	cfg, err := LoadFactoryConfig(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Name)
	require.Equal(t, "node", cfg.Options["target"])
}

func TestLoadFactoryConfig_MissingFileIsEmpty(t *testing.T) {
	cfg, err := LoadFactoryConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	if diff := cmp.Diff(pipeline.Config{}, cfg); diff != "" {
		t.Fatalf("want zero config, got diff:\n%s", diff)
	}
}

func TestLoadFactoryConfig_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factory.yml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: v2\nname: x\n"), 0o644))

	_, err := LoadFactoryConfig(path)
	require.Error(t, err)
}

func TestLoadFactoryConfig_InvalidSchemaFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factory.yml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: v1\nname: x\n"), 0o644))

	t.Setenv("FLUX_PIPELINE__SCHEMA_VERSION", "v9")
	_, err := LoadFactoryConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"v9"`)
}
