// Package plotduel provides the equation recognition and scoring engine of a
// two-player coordinate-plane game.
//
// Players place points on the plane, then take turns writing a line or a
// circle equation. Every still-active point that lies on the curve is captured.
//
// Design goals:
//   - Pure, total parsing: unrecognised text is a value, never an error
//   - Deterministic scoring in input order, no shared state
//   - Tolerance-based comparison, never exact float equality
//   - AI/LLM friendly: JSON tool surface and MCP-ready schema
package plotduel

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Numeric comparison
// ============================================================

// Tolerance is the absolute deviation under which two compared quantities are
// treated as equal. It applies unchanged to y-values (lines) and to squared
// distances (circles).
const Tolerance = 1e-4

// ApproxEqual reports whether |a-b| < tol.
func ApproxEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// ============================================================
// Point
// ============================================================

// Point is a placed coordinate. Active flips from true to false exactly once,
// when an equation captures it.
type Point struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Active bool    `json:"active"`
}

// Pt returns an active point at (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y, Active: true} }

// SameCoords reports whether p and q sit at the same coordinates.
func (p Point) SameCoords(q Point) bool { return p.X == q.X && p.Y == q.Y }

func (p Point) String() string {
	return "(" + formatNum(p.X) + ", " + formatNum(p.Y) + ")"
}

// ============================================================
// LineForm — y = slope·x + intercept
// ============================================================

type LineForm struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At returns slope·x + intercept.
func (l LineForm) At(x float64) float64 { return l.Slope*x + l.Intercept }

// Residual is the deviation compared against Tolerance for a point at (x, y).
func (l LineForm) Residual(x, y float64) float64 { return y - l.At(x) }

func (l LineForm) String() string {
	return "y = " + l.rhs("", "x")
}

func (l LineForm) LaTeX() string {
	return "y = " + l.rhs(" ", "x")
}

func (l LineForm) rhs(mulSep, v string) string {
	var s string
	switch {
	case l.Slope == 0:
		return formatNum(l.Intercept)
	case l.Slope == 1:
		s = v
	case l.Slope == -1:
		s = "-" + v
	default:
		s = formatNum(l.Slope) + mulSep + v
	}
	switch {
	case l.Intercept > 0:
		s += " + " + formatNum(l.Intercept)
	case l.Intercept < 0:
		s += " - " + formatNum(-l.Intercept)
	}
	return s
}

// ============================================================
// CircleForm — (x - cx)² + (y - cy)² = r²
// ============================================================

type CircleForm struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius"`
}

// Residual is the deviation compared against Tolerance for a point at (x, y):
// squared distance to the centre minus the squared radius.
func (c CircleForm) Residual(x, y float64) float64 {
	dx, dy := x-c.CenterX, y-c.CenterY
	return dx*dx + dy*dy - c.Radius*c.Radius
}

func (c CircleForm) String() string {
	return shifted("x", c.CenterX) + "^2 + " + shifted("y", c.CenterY) + "^2 = " + formatNum(c.Radius*c.Radius)
}

func (c CircleForm) LaTeX() string {
	return shifted("x", c.CenterX) + "^{2} + " + shifted("y", c.CenterY) + "^{2} = " + formatNum(c.Radius*c.Radius)
}

func shifted(v string, center float64) string {
	switch {
	case center > 0:
		return "(" + v + " - " + formatNum(center) + ")"
	case center < 0:
		return "(" + v + " + " + formatNum(-center) + ")"
	}
	return v
}

// ============================================================
// Classification — tagged variant over Line, Circle, Unrecognized
// ============================================================

// Kind tags which case of a Classification holds.
type Kind int

const (
	Unrecognized Kind = iota
	Line
	Circle
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Circle:
		return "circle"
	}
	return "unrecognized"
}

// Classification is the result of parsing one equation. Only the form
// matching Kind is meaningful.
type Classification struct {
	Kind   Kind
	line   LineForm
	circle CircleForm
}

func LineOf(slope, intercept float64) Classification {
	return Classification{Kind: Line, line: LineForm{Slope: slope, Intercept: intercept}}
}

func CircleOf(cx, cy, r float64) Classification {
	return Classification{Kind: Circle, circle: CircleForm{CenterX: cx, CenterY: cy, Radius: r}}
}

// Line returns the line form and true when the classification is a line.
func (c Classification) Line() (LineForm, bool) { return c.line, c.Kind == Line }

// Circle returns the circle form and true when the classification is a circle.
func (c Classification) Circle() (CircleForm, bool) { return c.circle, c.Kind == Circle }

func (c Classification) Recognized() bool { return c.Kind != Unrecognized }

// Residual dispatches to the held form. Unrecognized yields +Inf so that no
// point is ever within tolerance.
func (c Classification) Residual(x, y float64) float64 {
	switch c.Kind {
	case Line:
		return c.line.Residual(x, y)
	case Circle:
		return c.circle.Residual(x, y)
	}
	return math.Inf(1)
}

// Worth is the number of points awarded per capture.
func (c Classification) Worth() int {
	switch c.Kind {
	case Line:
		return 1
	case Circle:
		return 2
	}
	return 0
}

func (c Classification) String() string {
	switch c.Kind {
	case Line:
		return c.line.String()
	case Circle:
		return c.circle.String()
	}
	return "unrecognized"
}

func (c Classification) LaTeX() string {
	switch c.Kind {
	case Line:
		return c.line.LaTeX()
	case Circle:
		return c.circle.LaTeX()
	}
	return `\text{unrecognized}`
}

// Equal compares kinds and, within Tolerance, the held coefficients.
func (c Classification) Equal(o Classification) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case Line:
		return ApproxEqual(c.line.Slope, o.line.Slope, Tolerance) &&
			ApproxEqual(c.line.Intercept, o.line.Intercept, Tolerance)
	case Circle:
		return ApproxEqual(c.circle.CenterX, o.circle.CenterX, Tolerance) &&
			ApproxEqual(c.circle.CenterY, o.circle.CenterY, Tolerance) &&
			ApproxEqual(c.circle.Radius, o.circle.Radius, Tolerance)
	}
	return true
}

// ============================================================
// ScoringResult
// ============================================================

// ScoringResult is the outcome of one scoring pass. Points is the full
// post-scoring sequence; Captured holds the captured points in input order.
type ScoringResult struct {
	Points   []Point `json:"points"`
	Captured []Point `json:"captured"`
	Awarded  int     `json:"awarded"`
}

// formatNum trims float noise such as 2.0000000000000004 from rendered output.
func formatNum(f float64) string { return strconv.FormatFloat(f, 'g', 12, 64) }

func (r ScoringResult) String() string {
	return fmt.Sprintf("%d captured, %d awarded", len(r.Captured), r.Awarded)
}
