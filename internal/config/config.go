// Package config loads a bc.toml project file: the handful of
// per-project knobs the lexer, layout solver, and diagnostics renderer
// otherwise take as explicit per-call-site flags.
package config

import (
	"github.com/BurntSushi/toml"
)

// Compile holds settings that affect tokenization and layout.
type Compile struct {
	// TargetWidth is the pointer width in bits the layout solver
	// assumes. bc's layout rules are currently fixed to 64-bit, but
	// this knob exists for the day a second target width is added.
	TargetWidth int `toml:"target_width"`

	// PreserveComments mirrors lexer.WithPreserveComments: when true,
	// comment tokens are emitted instead of being discarded.
	PreserveComments bool `toml:"preserve_comments"`

	// MaxDiagnostics is the diagnostic cap read from max_diagnostics;
	// 0 means unlimited. No pass in this module reads it: Context
	// collects every diagnostic it finds.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Output holds settings for how results are printed.
type Output struct {
	// Format is "text" (the default human-readable renderer) or
	// "yaml" (internal/diag's YAML exporter).
	Format string `toml:"format"`
}

// Config is the root of a bc.toml file.
type Config struct {
	Compile Compile `toml:"compile"`
	Output  Output  `toml:"output"`
}

// Default returns the configuration used when no bc.toml is present.
func Default() Config {
	return Config{
		Compile: Compile{
			TargetWidth:      64,
			PreserveComments: false,
			MaxDiagnostics:   0,
		},
		Output: Output{Format: "text"},
	}
}

// Load reads and parses the bc.toml file at path, starting from
// Default so an incomplete file only overrides the keys it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
