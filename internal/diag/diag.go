// Package diag renders compiler diagnostics with source context: a
// file:line:col header, the offending source line, and a caret pointing
// at the span, the same shape the lexer, solver, and VM all report
// through.
package diag

import (
	"fmt"
	"strings"

	"github.com/parkertenbroeck/bc/internal/token"
)

// Kind is a closed taxonomy of the diagnostics this compiler can emit.
// Closed rather than a free-form string so call sites can switch on it
// and callers downstream (an IDE integration, a test harness) don't have
// to pattern-match messages.
type Kind int

const (
	KindInvalidChar Kind = iota
	KindInvalidUTF8
	KindEmptyCharLiteral
	KindUnclosedCharLiteral
	KindCharLiteralTooBig
	KindUnclosedMultiLineComment
	KindInvalidEscape
	KindUnfinishedEscapeSequence
	KindUnclosedStringLiteral
	KindNumberTooLong
	KindSuffixTooLong
	KindMalformedNumber
	KindNoNumberAfterBasePrefix
	KindInvalidBase2Digit
	KindEmptyExponent

	KindUnknownType
	KindRecursiveType
	KindUnsizedField
	KindUnsizedInContext
	KindDuplicateDefinition

	KindTypeMismatch
	KindStackUnderflow
	KindUnknownOperator

	KindUnresolvedConstant
)

var kindNames = [...]string{
	"invalid-char", "invalid-utf8", "empty-char-literal", "unclosed-char-literal",
	"char-literal-too-big", "unclosed-multiline-comment", "invalid-escape",
	"unfinished-escape-sequence", "unclosed-string-literal", "number-too-long",
	"suffix-too-long", "malformed-number", "no-number-after-base-prefix",
	"invalid-base2-digit", "empty-exponent",
	"unknown-type", "recursive-type", "unsized-field", "unsized-in-context",
	"duplicate-definition",
	"type-mismatch", "stack-underflow", "unknown-operator",
	"unresolved-constant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Diagnostic is a single reported problem: what kind it is, a
// human-readable message, the span of source it concerns, and the file
// it was found in (empty for in-memory/eval input).
type Diagnostic struct {
	Kind    Kind
	Message string
	Span    token.Span
	File    string
}

func New(kind Kind, span token.Span, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

func (d Diagnostic) Error() string {
	return d.Format(d.File, "", false)
}

// Format renders the diagnostic against source, the full text the span
// was taken from. If file is non-empty it's named in the header;
// otherwise the header gives only the "at line:col" position. color enables ANSI highlighting of the
// caret and message, matching the teacher's terminal renderer.
func (d Diagnostic) Format(file, source string, color bool) string {
	var sb strings.Builder

	line := int(d.Span.Line) + 1
	col := int(d.Span.Column) + 1

	if file != "" {
		fmt.Fprintf(&sb, "error[%s] in %s:%d:%d\n", d.Kind, file, line, col)
	} else {
		fmt.Fprintf(&sb, "error[%s] at %d:%d\n", d.Kind, line, col)
	}

	if sourceLine := lineAt(source, line); sourceLine != "" {
		gutter := fmt.Sprintf("%4d | ", line)
		sb.WriteString(gutter)
		sb.WriteString(sourceLine)
		sb.WriteByte('\n')

		sb.WriteString(strings.Repeat(" ", len(gutter)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteByte('\n')
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func lineAt(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics the way a CLI reports a
// failed compilation: a summary line followed by each diagnostic in
// order.
func FormatAll(diags []Diagnostic, file, source string, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(file, source, color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(diags))
		sb.WriteString(d.Format(file, source, color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
