package plotduel

// ============================================================
// ScoringEngine
// ============================================================

// Captures reports whether an active point lies on the classified curve.
// Lines compare y against slope·x + intercept; circles compare the squared
// distance to the centre against the squared radius. Inactive points and
// Unrecognized equations never capture.
func (c Classification) Captures(p Point) bool {
	if !p.Active {
		return false
	}
	switch c.Kind {
	case Line:
		return ApproxEqual(p.Y, c.line.At(p.X), Tolerance)
	case Circle:
		dx, dy := p.X-c.circle.CenterX, p.Y-c.circle.CenterY
		return ApproxEqual(c.circle.Radius*c.circle.Radius, dx*dx+dy*dy, Tolerance)
	}
	return false
}

// Score applies a classified equation to points in input order. The input
// slice is left untouched; the result carries a copy in which every captured
// point is inactive. Each line capture is worth 1, each circle capture 2.
func Score(c Classification, points []Point) ScoringResult {
	out := make([]Point, len(points))
	copy(out, points)
	res := ScoringResult{Points: out, Captured: []Point{}}
	for i := range out {
		if !c.Captures(out[i]) {
			continue
		}
		out[i].Active = false
		res.Captured = append(res.Captured, out[i])
	}
	res.Awarded = c.Worth() * len(res.Captured)
	return res
}

// ScoreText parses equation and scores it in one step.
func ScoreText(equation string, points []Point) (Classification, ScoringResult) {
	c := Parse(equation)
	return c, Score(c, points)
}

// ActiveCount returns how many points are still capturable.
func ActiveCount(points []Point) int {
	n := 0
	for _, p := range points {
		if p.Active {
			n++
		}
	}
	return n
}
