// Package config loads a runtime category.Policy from a YAML
// document, so a deployment can flip tolerant/strict decoding
// behaviour without a rebuild.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexar-aero/asterix/category"
)

// File is the on-disk shape of a policy configuration document:
//
//	verbose: false
//	fail_on_missing_mandatory: false
//	fail_on_unknown_unit: false
type File struct {
	Verbose                bool `yaml:"verbose"`
	FailOnMissingMandatory bool `yaml:"fail_on_missing_mandatory"`
	FailOnUnknownUnit      bool `yaml:"fail_on_unknown_unit"`
}

// Policy converts the parsed document into a category.Policy.
func (f File) Policy() category.Policy {
	return category.PolicyWith(
		category.WithVerbose(f.Verbose),
		category.WithFailOnMissingMandatory(f.FailOnMissingMandatory),
		category.WithFailOnUnknownUnit(f.FailOnUnknownUnit),
	)
}

// Load reads and parses a policy document from path.
func Load(path string) (category.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return category.Policy{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a policy document already held in memory.
func Parse(data []byte) (category.Policy, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return category.Policy{}, fmt.Errorf("config: parse: %w", err)
	}

	return f.Policy(), nil
}

// Read parses a policy document from an arbitrary io.Reader, e.g. an
// embedded asset or a network fetch.
func Read(r io.Reader) (category.Policy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return category.Policy{}, fmt.Errorf("config: read: %w", err)
	}

	return Parse(data)
}
