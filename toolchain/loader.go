package toolchain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML toolchain profile from the given
// path.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read toolchain profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (Profile, error) {
	var p Profile

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to parse toolchain YAML: %w", err)
	}

	// Apply defaults for the required tools; formatter and disassembler
	// stay as written, an omitted entry disables the tool.
	applyDefaults(&p)

	return p, nil
}

// applyDefaults fills in the compiler and flags when the profile leaves
// them out.
func applyDefaults(p *Profile) {
	d := Default()

	if p.Compiler == "" {
		p.Compiler = d.Compiler
	}

	if len(p.Flags) == 0 {
		p.Flags = d.Flags
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p Profile) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal toolchain profile: %w", err)
	}

	return data, nil
}
