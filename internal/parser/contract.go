// Package parser documents the contract a full bc parser would
// satisfy without implementing one: token-stream in, ast.Module out.
// Parsing a whole program is out of scope here; MODULE C's ingestion
// pass (internal/context/ingest.go) takes an already-built ast.Module,
// and nothing in this repository builds one from source text.
package parser

import (
	"fmt"

	"github.com/parkertenbroeck/bc/internal/ast"
	"github.com/parkertenbroeck/bc/internal/lexer"
)

// Parse would tokenize src with l and build a complete ast.Module. No
// implementation ships; every call reports that plainly rather than
// silently returning an empty module.
func Parse(l *lexer.Lexer) (*ast.Module, error) {
	return nil, fmt.Errorf("parser: not implemented; see internal/context for the subset bc actually ingests")
}
