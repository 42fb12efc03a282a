package token

import (
	"fmt"
	"strings"
)

// Hint classifies how a numeric lexeme's digits should be read, without
// committing to a parsed value. It mirrors the original tokenizer's
// TypeHint: the lexer only needs to tell digits apart from a radix
// prefix and a decimal point, it never computes the number itself.
type Hint uint8

const (
	// HintInt is a bare decimal integer: digits only, no '.', no radix
	// prefix.
	HintInt Hint = iota
	// HintFloat is a decimal lexeme containing a '.' or an exponent.
	HintFloat
	// HintHex is a "0x"-prefixed lexeme.
	HintHex
	// HintBin is a "0b"-prefixed lexeme.
	HintBin
)

func (h Hint) String() string {
	switch h {
	case HintInt:
		return "int"
	case HintFloat:
		return "float"
	case HintHex:
		return "hex"
	case HintBin:
		return "bin"
	default:
		return "unknown"
	}
}

// MaxLexemeLen and MaxSuffixLen bound what the lexer will capture for a
// single numeric literal. They exist because Number stores the lexeme
// length and the suffix offset in 16 and 8 bits respectively, matching
// the original's NonZeroU16 length and u8 back-offset; a literal or
// suffix exceeding these is reported as a lexer error rather than
// silently truncated.
const (
	MaxLexemeLen = 1<<16 - 1
	MaxSuffixLen = 1<<8 - 1
)

// Number is a lossless capture of a numeric literal: the byte range of
// the full lexeme in the source (digits, radix prefix, optional '.',
// and any trailing suffix all included), the offset from the end of
// the lexeme at which a user suffix (e.g. "u32", "f64") begins, and a
// Hint for how to read the digit portion. Number never parses the
// digits into a value; that is Solver/VM territory, downstream of this
// package.
type Number struct {
	Span Span
	// SuffixStart is how many bytes from the end of the lexeme the
	// suffix begins. A value of 0 means there is no suffix.
	SuffixStart uint8
	Hint        Hint
}

// Suffix returns the literal's trailing suffix, or "" if it has none.
// lexeme must be the exact source slice the Number's Span covers.
func (n Number) Suffix(lexeme string) string {
	if n.SuffixStart == 0 {
		return ""
	}
	return lexeme[len(lexeme)-int(n.SuffixStart):]
}

// Digits returns the portion of lexeme preceding the suffix: the radix
// prefix, digits, and optional decimal point, with the suffix and any
// separators stripped.
func (n Number) Digits(lexeme string) string {
	if n.SuffixStart != 0 {
		lexeme = lexeme[:len(lexeme)-int(n.SuffixStart)]
	}
	return strings.ReplaceAll(lexeme, "_", "")
}

func (n Number) String() string {
	return fmt.Sprintf("Number{hint=%s, suffixStart=%d, span=%s}", n.Hint, n.SuffixStart, n.Span)
}
