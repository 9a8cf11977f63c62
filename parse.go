package plotduel

import "math"

// ============================================================
// EquationParser
// ============================================================

// Parse classifies one line of equation text as a line, a circle, or
// Unrecognized. It never fails: anything outside the two grammars, multi-line
// input and circles with a negative radius squared all yield Unrecognized.
//
// Line grammar (whitespace between tokens is ignored, case-insensitive):
//
//	line  := "y" "=" [sign] ( term | NUM )
//	term  := [NUM ["*"]] "x" [ ("+"|"-") [sign] NUM ]
//
// An omitted x coefficient is 1 and an omitted constant is 0.
//
// Circle grammar:
//
//	circle := square(x) "+" square(y) "=" [sign] NUM
//	square := v "^" "2" | "(" v [ ("+"|"-") [sign] NUM ] ")" "^" "2"
//
// "(x - h)" has centre h and "(x + h)" centre -h; the squares may appear in
// either order. The right-hand side is the radius squared.
func Parse(text string) Classification {
	s, ok := normalize(text)
	if !ok {
		return Classification{}
	}
	toks, ok := lex(s)
	if !ok {
		return Classification{}
	}
	// The grammars are disjoint: a line starts with "y =", a circle with a
	// squared term.
	if l, ok := (&parser{toks: toks}).line(); ok {
		return Classification{Kind: Line, line: l}
	}
	if c, ok := (&parser{toks: toks}).circle(); ok {
		return Classification{Kind: Circle, circle: c}
	}
	return Classification{}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() tokKind { return p.toks[p.pos].kind }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(k tokKind) bool {
	if p.peek() != k {
		return false
	}
	p.next()
	return true
}

// sign consumes an optional unary sign and returns the multiplier it implies.
func (p *parser) sign() float64 {
	switch {
	case p.accept(tokMinus):
		return -1
	case p.accept(tokPlus):
	}
	return 1
}

// signedNum reads [sign] NUM.
func (p *parser) signedNum() (float64, bool) {
	s := p.sign()
	if p.peek() != tokNum {
		return 0, false
	}
	return s * p.next().num, true
}

// addend reads an optional ("+"|"-") [sign] NUM and folds the operator into
// the value. A missing addend is 0.
func (p *parser) addend() (float64, bool) {
	var op float64
	switch {
	case p.accept(tokPlus):
		op = 1
	case p.accept(tokMinus):
		op = -1
	default:
		return 0, true
	}
	n, ok := p.signedNum()
	return op * n, ok
}

func (p *parser) line() (LineForm, bool) {
	if !p.accept(tokY) || !p.accept(tokEq) {
		return LineForm{}, false
	}
	s := p.sign()
	slope := 1.0
	if p.peek() == tokNum {
		n := p.next().num
		if k := p.peek(); k != tokStar && k != tokX {
			// y = <B>
			return LineForm{Intercept: s * n}, p.accept(tokEOF)
		}
		slope = n
		p.accept(tokStar)
	}
	if !p.accept(tokX) {
		return LineForm{}, false
	}
	b, ok := p.addend()
	if !ok {
		return LineForm{}, false
	}
	return LineForm{Slope: s * slope, Intercept: b}, p.accept(tokEOF)
}

func (p *parser) circle() (CircleForm, bool) {
	v1, c1, ok := p.square()
	if !ok || !p.accept(tokPlus) {
		return CircleForm{}, false
	}
	v2, c2, ok := p.square()
	if !ok || v1 == v2 || !p.accept(tokEq) {
		return CircleForm{}, false
	}
	r2, ok := p.signedNum()
	if !ok || r2 < 0 || !p.accept(tokEOF) {
		return CircleForm{}, false
	}
	if v1 == tokY {
		c1, c2 = c2, c1
	}
	return CircleForm{CenterX: c1, CenterY: c2, Radius: math.Sqrt(r2)}, true
}

// square reads one squared term and returns its variable and centre.
func (p *parser) square() (tokKind, float64, bool) {
	var v tokKind
	var center float64
	if p.accept(tokLParen) {
		v = p.variable()
		if v == tokEOF {
			return 0, 0, false
		}
		shift, ok := p.addend()
		if !ok || !p.accept(tokRParen) {
			return 0, 0, false
		}
		center = -shift
	} else if v = p.variable(); v == tokEOF {
		return 0, 0, false
	}
	if !p.accept(tokCaret) || p.peek() != tokNum || p.next().num != 2 {
		return 0, 0, false
	}
	return v, center, true
}

// variable consumes x or y, returning tokEOF when neither is next.
func (p *parser) variable() tokKind {
	switch k := p.peek(); k {
	case tokX, tokY:
		p.next()
		return k
	}
	return tokEOF
}
