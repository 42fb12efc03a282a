package token

// Token is a single lexeme produced by the lexer: its Kind, the literal
// text it spans in the source, and the Span locating it. Literal is the
// exact source slice (not unescaped) for everything except STRING and
// CHAR, whose Literal carries the decoded value without the quotes;
// callers that need the raw quoted text can re-slice the source using
// Span.
type Token struct {
	Kind    Kind
	Literal string
	Span    Span

	// Num carries the lossless numeric capture for NUMBER tokens. It is
	// the zero Number for every other kind.
	Num Number
}

func (t Token) String() string {
	if t.Literal == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Literal + ")"
}
