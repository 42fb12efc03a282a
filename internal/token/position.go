// Package token defines the lexeme vocabulary shared by the lexer and
// everything downstream of it: token kinds, spans, and the lossless
// numeric literal capture described by the lexer's contract.
package token

import "fmt"

// Position is a single point in the source: a byte offset together with
// the 0-based line and column it falls on. Column counts Unicode scalar
// values, not bytes and not display width; offset counts UTF-8 bytes.
type Position struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// Span locates a lexeme or diagnostic in the source as a half-open
// [start, start+Len) byte range, with the human-facing line/column of
// the start position carried alongside for rendering.
type Span struct {
	Line   uint32
	Column uint32
	Offset uint32
	Len    uint32
}

// SpanBetween builds a Span covering [start, end) of the source.
func SpanBetween(start, end Position) Span {
	return Span{
		Line:   start.Line,
		Column: start.Column,
		Offset: start.Offset,
		Len:    end.Offset - start.Offset,
	}
}

// End returns the byte offset immediately after the span.
func (s Span) End() uint32 { return s.Offset + s.Len }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line+1, s.Column+1)
}
