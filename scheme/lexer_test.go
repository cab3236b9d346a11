package scheme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenizationRoundTrip checks that successive next() calls yield the
// token sequence the source text implies, and that the lexer reports EOF
// exactly when no further token exists.
func TestTokenizationRoundTrip(t *testing.T) {
	l := newLexer(strings.NewReader("(+ 1 -2 foo? bar! 'x . )"))
	var got []tokType
	for {
		tok := l.next()
		got = append(got, tok.typ)
		if tok.typ == tokEOF {
			break
		}
	}
	want := []tokType{
		tokOpenParen, tokSymbol, tokConstant, tokConstant, tokSymbol,
		tokSymbol, tokQuote, tokSymbol, tokDot, tokCloseParen, tokEOF,
	}
	assert.Equal(t, want, got)
}

func TestLexerSignVsSymbolDisambiguation(t *testing.T) {
	cases := []struct {
		text string
		typ  tokType
		num  int64
		text2 string
	}{
		{"-5", tokConstant, -5, ""},
		{"+5", tokConstant, 5, ""},
		{"-", tokSymbol, 0, "-"},
		{"+", tokSymbol, 0, "+"},
		{"/", tokSymbol, 0, "/"},
	}
	for _, c := range cases {
		l := newLexer(strings.NewReader(c.text))
		tok := l.next()
		assert.Equal(t, c.typ, tok.typ, c.text)
		if c.typ == tokConstant {
			assert.Equal(t, c.num, tok.num, c.text)
		} else {
			assert.Equal(t, c.text2, tok.text, c.text)
		}
	}
}

func TestLexerSymbolCharacterClasses(t *testing.T) {
	l := newLexer(strings.NewReader("list-ref <= >= null? set-car!"))
	want := []string{"list-ref", "<=", ">=", "null?", "set-car!"}
	for _, w := range want {
		tok := l.next()
		assert.Equal(t, tokSymbol, tok.typ)
		assert.Equal(t, w, tok.text)
	}
	assert.Equal(t, tokEOF, l.next().typ)
}

func TestLexerInvalidCharacter(t *testing.T) {
	l := newLexer(strings.NewReader("@"))
	assert.Panics(t, func() {
		l.next()
	})
}
