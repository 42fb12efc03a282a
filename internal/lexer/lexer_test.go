package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/token"
)

func collect(src string) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	toks := collect("let x: u32 = 1 + 2;")
	assert.Equal(t, []token.Kind{
		token.LET, token.IDENT, token.COLON, token.IDENT, token.EQUALS,
		token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON, token.EOF,
	}, kinds(toks))
}

// TestEqualsAndDoubleEqualsAreSwapped pins the original's deliberate
// inversion: a single '=' is EQUALS, the doubled '==' is ASSIGN. See
// DESIGN.md for why this isn't a bug.
func TestEqualsAndDoubleEqualsAreSwapped(t *testing.T) {
	toks := collect("= ==")
	require.Len(t, toks, 3)
	assert.Equal(t, token.EQUALS, toks[0].Kind)
	assert.Equal(t, "=", toks[0].Literal)
	assert.Equal(t, token.ASSIGN, toks[1].Kind)
	assert.Equal(t, "==", toks[1].Literal)
}

func TestNextTokenDisambiguatesMultiCharOperators(t *testing.T) {
	cases := []struct {
		src  string
		want token.Kind
	}{
		{"&&", token.LOGICALAND},
		{"&", token.AMPERSAND},
		{"||", token.LOGICALOR},
		{"|", token.PIPE},
		{"..=", token.DOTDOTEQ},
		{"..", token.DOTDOT},
		{".", token.DOT},
		{"->", token.ARROW},
		{"<<=", token.SHLEQ},
		{"<<", token.SHL},
		{"<=", token.LESSTHANEQ},
		{"<", token.LESSTHAN},
	}
	for _, c := range cases {
		toks := collect(c.src)
		require.NotEmpty(t, toks)
		assert.Equalf(t, c.want, toks[0].Kind, "source %q", c.src)
	}
}

func TestNextTokenCapturesNumericHints(t *testing.T) {
	toks := collect("42 3.14 0xFF 0b101")
	require.Len(t, toks, 5)
	assert.Equal(t, token.HintInt, toks[0].Num.Hint)
	assert.Equal(t, token.HintFloat, toks[1].Num.Hint)
	assert.Equal(t, token.HintHex, toks[2].Num.Hint)
	assert.Equal(t, token.HintBin, toks[3].Num.Hint)
}

func TestNextTokenDecodesStringEscape(t *testing.T) {
	toks := collect(`"a\nb"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Literal)
}

func TestNextTokenSkipsCommentsByDefault(t *testing.T) {
	toks := collect("1 // a comment\n2")
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestNextTokenPreservesCommentsWhenConfigured(t *testing.T) {
	l := New("1 // a comment\n2", WithPreserveComments(true))
	var got []token.Kind
	for {
		tok := l.NextToken()
		got = append(got, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	assert.Contains(t, got, token.COMMENT_LINE)
}

func TestNextTokenReportsNoNumberAfterBasePrefix(t *testing.T) {
	for _, src := range []string{"0x", "0b"} {
		l := New(src)
		l.NextToken()
		require.NotEmptyf(t, l.Diagnostics(), "source %q", src)
		assert.Equalf(t, diag.KindNoNumberAfterBasePrefix, l.Diagnostics()[0].Kind, "source %q", src)
	}
}

func TestNextTokenReportsInvalidBase2Digit(t *testing.T) {
	l := New("0b102")
	l.NextToken()
	require.NotEmpty(t, l.Diagnostics())
	assert.Equal(t, diag.KindInvalidBase2Digit, l.Diagnostics()[0].Kind)
}

func TestNextTokenReportsEmptyExponent(t *testing.T) {
	l := New("1e")
	l.NextToken()
	require.NotEmpty(t, l.Diagnostics())
	assert.Equal(t, diag.KindEmptyExponent, l.Diagnostics()[0].Kind)
}

func TestNextTokenReportsIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Kind)
	assert.NotEmpty(t, l.Diagnostics())
}

func TestLookupIdentRecognizesKeywords(t *testing.T) {
	toks := collect("fn return if else while loop let for true false ident")
	want := []token.Kind{
		token.FN, token.RETURN, token.IF, token.ELSE, token.WHILE,
		token.LOOP, token.LET, token.FOR, token.TRUE, token.FALSE,
		token.IDENT, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestSaveRestoreRewindsLexerState(t *testing.T) {
	l := New("1 2 3")
	first := l.NextToken()
	state := l.Save()
	second := l.NextToken()
	l.Restore(state)
	replayed := l.NextToken()

	assert.Equal(t, "1", first.Literal)
	assert.Equal(t, second.Literal, replayed.Literal)
}
