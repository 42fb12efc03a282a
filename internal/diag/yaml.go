package diag

import (
	"github.com/goccy/go-yaml"
)

// yamlDiagnostic is the exported shape of a Diagnostic: Kind renders
// as its string name rather than the bare integer, so the exported
// batch is self-describing without a reader needing this package's
// Kind constants.
type yamlDiagnostic struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	File    string `yaml:"file,omitempty"`
	Line    uint32 `yaml:"line"`
	Column  uint32 `yaml:"column"`
}

// ExportYAML serializes a diagnostic batch as one YAML document
// listing every diagnostic in order. No CLI command calls it.
func ExportYAML(diags []Diagnostic) ([]byte, error) {
	out := make([]yamlDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = yamlDiagnostic{
			Kind:    d.Kind.String(),
			Message: d.Message,
			File:    d.File,
			Line:    d.Span.Line + 1,
			Column:  d.Span.Column + 1,
		}
	}
	return yaml.Marshal(out)
}
