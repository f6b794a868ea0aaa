// Package tasks loads and runs recipe manifests: named, declarative
// sequences of shell steps. Steps run strictly sequentially and a failing
// step aborts its recipe with the step's exit code unchanged.
package tasks

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/crilang/cri/pkg/logger"
)

// DefaultManifestFile is the manifest name looked up in the working
// directory when no path is given.
const DefaultManifestFile = "cri-tasks.yml"

//go:embed schemas/manifest.json
var manifestSchema string

var manifestLog = logger.New("tasks:manifest")

// Ensure declares a binary a step needs on PATH and the command that
// installs it when absent.
type Ensure struct {
	Binary  string `yaml:"binary"`
	Install string `yaml:"install"`
}

// Step is one shell invocation within a recipe.
type Step struct {
	Run    string  `yaml:"run"`
	Ensure *Ensure `yaml:"ensure,omitempty"`
}

// Recipe is a named sequence of steps. A recipe without steps is a listing
// recipe: running it prints the available recipes.
type Recipe struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps,omitempty"`
}

// Manifest is the parsed recipe file. Recipe order is preserved for
// listings.
type Manifest struct {
	Default string   `yaml:"default,omitempty"`
	Recipes []Recipe `yaml:"recipes"`
}

// Recipe returns the named recipe, or nil when it does not exist.
func (m *Manifest) Recipe(name string) *Recipe {
	for i := range m.Recipes {
		if m.Recipes[i].Name == name {
			return &m.Recipes[i]
		}
	}
	return nil
}

// LoadManifest reads, validates and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest validates manifest bytes against the embedded schema and
// unmarshals them.
func ParseManifest(data []byte) (*Manifest, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}
	if err := validateManifest(doc); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}
	if manifest.Default != "" && manifest.Recipe(manifest.Default) == nil {
		return nil, fmt.Errorf("invalid manifest: default recipe %q is not defined", manifest.Default)
	}
	for _, r := range manifest.Recipes {
		manifestLog.Printf("loaded recipe %s (%d steps)", r.Name, len(r.Steps))
	}
	return &manifest, nil
}

func validateManifest(doc any) error {
	var schemaDoc any
	if err := json.Unmarshal([]byte(manifestSchema), &schemaDoc); err != nil {
		return fmt.Errorf("failed to parse manifest schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.json", schemaDoc); err != nil {
		return fmt.Errorf("failed to add manifest schema: %w", err)
	}
	schema, err := compiler.Compile("manifest.json")
	if err != nil {
		return fmt.Errorf("failed to compile manifest schema: %w", err)
	}

	return schema.Validate(doc)
}
