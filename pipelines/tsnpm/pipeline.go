// Package tsnpm provides the stock pipeline for TypeScript packages built
// with webpack and published to npm.
package tsnpm

import "github.com/youwol/flux-core/pipeline"

// Step is one stage of the pipeline and the command that runs it.
type Step struct {
	ID      string `yaml:"id"`
	Run     string `yaml:"run"`
	Sources string `yaml:"sources,omitempty"`
}

// Definition is the pipeline handed to the host.
type Definition struct {
	ID       string `yaml:"id"`
	Language string `yaml:"language"`
	Compiler string `yaml:"compiler"`
	Output   string `yaml:"output"`
	Steps    []Step `yaml:"steps"`
}

// Pipeline returns a fresh definition on every call.
func Pipeline() (pipeline.Pipeline, error) {
	return &Definition{
		ID:       "typescript-webpack-npm",
		Language: "typescript",
		Compiler: "webpack",
		Output:   "dist",
		Steps: []Step{
			{ID: "init", Run: "yarn"},
			{ID: "build", Run: "yarn build:prod", Sources: "src"},
			{ID: "test", Run: "yarn test-coverage", Sources: "src/tests"},
			{ID: "doc", Run: "yarn doc"},
			{ID: "publish", Run: "yarn publish --non-interactive"},
		},
	}, nil
}
