package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/youwol/flux-core/pipeline"
)

const EnvPrefix = "FLUX_PIPELINE__"

// LoadFactoryConfig merges YAML (if present) with env-vars
// (prefix `FLUX_PIPELINE__`, delimiter `__`). Nothing is defaulted: the
// factory receives exactly what was configured.
func LoadFactoryConfig(path string) (pipeline.Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return pipeline.Config{}, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", envKey), nil); err != nil {
		return pipeline.Config{}, fmt.Errorf("factory env: %w", err)
	}

	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return pipeline.Config{}, fmt.Errorf("factory schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	var cfg pipeline.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FLUX_PIPELINE__OPTIONS__TARGET -> options__target, split on "__" by koanf.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
