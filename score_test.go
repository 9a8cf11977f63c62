package plotduel_test

import (
	"testing"

	"github.com/njchilds90/plotduel"
)

// ============================================================
// Scenarios
// ============================================================

func TestScore_LineCapturesBothPoints(t *testing.T) {
	points := []plotduel.Point{plotduel.Pt(0, 0), plotduel.Pt(1, 1)}
	c, res := plotduel.ScoreText("y = x", points)
	if !c.Equal(plotduel.LineOf(1, 0)) {
		t.Fatalf("want y = x, got %s", c)
	}
	if len(res.Captured) != 2 || res.Awarded != 2 {
		t.Errorf("want 2 captured / 2 awarded, got %s", res)
	}
	for i, p := range res.Points {
		if p.Active {
			t.Errorf("point %d should be captured", i)
		}
	}
}

func TestScore_CircleCaptureWorthTwo(t *testing.T) {
	c, res := plotduel.ScoreText("(x-0)^2+(y-0)^2=25", []plotduel.Point{plotduel.Pt(3, 4)})
	if !c.Equal(plotduel.CircleOf(0, 0, 5)) {
		t.Fatalf("want circle r=5 at origin, got %s", c)
	}
	if len(res.Captured) != 1 || res.Awarded != 2 {
		t.Errorf("want 1 captured / 2 awarded, got %s", res)
	}
}

func TestScore_UnrecognizedHasNoEffect(t *testing.T) {
	points := []plotduel.Point{plotduel.Pt(1, 1)}
	c, res := plotduel.ScoreText("banana", points)
	if c.Recognized() {
		t.Fatalf("want unrecognized, got %s", c)
	}
	if len(res.Captured) != 0 || res.Awarded != 0 {
		t.Errorf("want no effect, got %s", res)
	}
	if !res.Points[0].Active {
		t.Error("unrecognized equation must not deactivate points")
	}
}

func TestScore_InactivePointIgnored(t *testing.T) {
	points := []plotduel.Point{{X: 2, Y: 5, Active: false}}
	_, res := plotduel.ScoreText("y = 2x + 1", points)
	if len(res.Captured) != 0 || res.Awarded != 0 {
		t.Errorf("inactive point must not be captured, got %s", res)
	}
}

// ============================================================
// Tolerance
// ============================================================

func TestScore_LineToleranceBoundary(t *testing.T) {
	line := plotduel.Parse("y = 0")
	tests := []struct {
		p    plotduel.Point
		want bool
	}{
		{plotduel.Pt(5, 0.00009), true},
		{plotduel.Pt(5, -0.00009), true},
		{plotduel.Pt(5, 0.00011), false},
		{plotduel.Pt(5, -0.00011), false},
	}
	for _, tc := range tests {
		if got := line.Captures(tc.p); got != tc.want {
			t.Errorf("y = 0 captures %v: want %v, got %v", tc.p, tc.want, got)
		}
	}

	diag := plotduel.Parse("y = x")
	if !diag.Captures(plotduel.Pt(1, 1.00009)) {
		t.Error("y = x should capture (1, 1.00009)")
	}
	if diag.Captures(plotduel.Pt(1, 1.00011)) {
		t.Error("y = x should not capture (1, 1.00011)")
	}
}

func TestScore_CircleComparesSquaredDistance(t *testing.T) {
	unit := plotduel.CircleOf(0, 0, 1)
	// d² - r² = 0.00008
	if !unit.Captures(plotduel.Pt(1.00004, 0)) {
		t.Error("(1.00004, 0) is within tolerance on squared distance")
	}
	// Distance is off by only 0.00006 but d² - r² = 0.00012.
	if unit.Captures(plotduel.Pt(1.00006, 0)) {
		t.Error("(1.00006, 0) exceeds tolerance on squared distance")
	}
}

func TestApproxEqual(t *testing.T) {
	if !plotduel.ApproxEqual(1, 1+5e-5, plotduel.Tolerance) {
		t.Error("1 and 1.00005 should be approx equal")
	}
	if plotduel.ApproxEqual(1, 1+2e-4, plotduel.Tolerance) {
		t.Error("1 and 1.0002 should differ")
	}
	if plotduel.ApproxEqual(0, plotduel.Tolerance, plotduel.Tolerance) {
		t.Error("a difference equal to the tolerance is not within it")
	}
}

// ============================================================
// Invariants
// ============================================================

func TestScore_Monotonic(t *testing.T) {
	points := []plotduel.Point{plotduel.Pt(0, 1), plotduel.Pt(1, 2), plotduel.Pt(5, 5)}
	first := plotduel.Score(plotduel.Parse("y = x + 1"), points)
	if first.Awarded != 2 {
		t.Fatalf("want 2 awarded, got %d", first.Awarded)
	}
	for _, eq := range []string{"y = x + 1", "x^2 + (y-1)^2 = 0", "(x-1)^2 + (y-2)^2 = 0"} {
		_, res := plotduel.ScoreText(eq, first.Points)
		if res.Awarded != 0 || len(res.Captured) != 0 {
			t.Errorf("%q recaptured a captured point: %s", eq, res)
		}
	}
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	points := []plotduel.Point{plotduel.Pt(0, 0), plotduel.Pt(2, 3)}
	res := plotduel.Score(plotduel.LineOf(1, 0), points)
	if !points[0].Active || !points[1].Active {
		t.Error("input slice must be left untouched")
	}
	if res.Points[0].Active || !res.Points[1].Active {
		t.Errorf("want only the first point captured, got %v", res.Points)
	}
}

func TestScore_CapturedFollowsInputOrder(t *testing.T) {
	points := []plotduel.Point{
		plotduel.Pt(3, 3), plotduel.Pt(0, 1), plotduel.Pt(-1, -1), plotduel.Pt(7, 7),
	}
	res := plotduel.Score(plotduel.LineOf(1, 0), points)
	want := []plotduel.Point{
		{X: 3, Y: 3}, {X: -1, Y: -1}, {X: 7, Y: 7},
	}
	if len(res.Captured) != len(want) {
		t.Fatalf("want %d captured, got %d", len(want), len(res.Captured))
	}
	for i := range want {
		if res.Captured[i] != want[i] {
			t.Errorf("captured[%d]: want %v, got %+v", i, want[i], res.Captured[i])
		}
	}
	if res.Awarded != 3 {
		t.Errorf("want 3 awarded, got %d", res.Awarded)
	}
}

func TestScore_EmptyPoints(t *testing.T) {
	res := plotduel.Score(plotduel.CircleOf(0, 0, 1), nil)
	if len(res.Points) != 0 || len(res.Captured) != 0 || res.Awarded != 0 {
		t.Errorf("want empty result, got %+v", res)
	}
}

func TestActiveCount(t *testing.T) {
	points := []plotduel.Point{plotduel.Pt(0, 0), {X: 1, Y: 1}, plotduel.Pt(2, 2)}
	if n := plotduel.ActiveCount(points); n != 2 {
		t.Errorf("want 2, got %d", n)
	}
}
