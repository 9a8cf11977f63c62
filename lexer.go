package plotduel

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ============================================================
// Tokens
// ============================================================

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokX
	tokY
	tokPlus
	tokMinus
	tokStar
	tokCaret
	tokLParen
	tokRParen
	tokEq
)

type token struct {
	kind tokKind
	num  float64
}

// ============================================================
// Normalisation
// ============================================================

// glyphs rewrites characters NFKC leaves alone or maps too eagerly
// ("²" would otherwise become a bare "2").
var glyphs = strings.NewReplacer(
	"²", "^2",
	"−", "-", // minus sign
	"–", "-", // en dash
	"×", "*",
	"·", "*",
	"⋅", "*",
)

// normalize returns the text ready for lexing, or false when the input
// spans more than one line.
func normalize(text string) (string, bool) {
	if strings.ContainsAny(text, "\n\r\v\f\u2028\u2029") {
		return "", false
	}
	text = glyphs.Replace(text)
	text = norm.NFKC.String(text)
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(text), true
}

// ============================================================
// Lexer
// ============================================================

// lex splits normalised text into tokens, ending with tokEOF. Any character
// outside the equation alphabet fails the whole input.
func lex(s string) ([]token, bool) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case isDigit(c) || c == '.':
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			if j < len(s) && s[j] == '.' {
				j++
				for j < len(s) && isDigit(s[j]) {
					j++
				}
			}
			lit := s[i:j]
			if lit == "." {
				return nil, false
			}
			f, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, false
			}
			toks = append(toks, token{kind: tokNum, num: f})
			i = j
			continue
		}
		k, ok := punct[c]
		if !ok {
			// Remaining unicode spaces after NFKC still separate tokens.
			r, size := utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				i += size
				continue
			}
			return nil, false
		}
		toks = append(toks, token{kind: k})
		i++
	}
	return append(toks, token{kind: tokEOF}), true
}

var punct = map[byte]tokKind{
	'x': tokX,
	'y': tokY,
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
	'=': tokEq,
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
