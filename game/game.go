// Package game sequences a two-player match around the plotduel engine:
// point placement, alternating equation turns, scores and the end of the game.
//
// A Game is not safe for concurrent use; one controller drives it.
package game

import (
	"errors"
	"fmt"

	"github.com/njchilds90/plotduel"
)

var (
	ErrDuplicatePoint = errors.New("point already placed")
	ErrAlreadyRunning = errors.New("game already running")
	ErrNotRunning     = errors.New("game not running")
	ErrNoActivePoints = errors.New("no active points to capture")
	ErrGameOver       = errors.New("game over")
)

type Phase int

const (
	Setup Phase = iota
	Running
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	}
	return "setup"
}

// Round records one equation turn.
type Round struct {
	Number         int
	Player         int
	Equation       string
	Classification plotduel.Classification
	Result         plotduel.ScoringResult
}

type Game struct {
	phase   Phase
	points  []plotduel.Point
	scores  [2]int
	current int
	rounds  []Round
}

// New returns a game in the setup phase with player 1 to move first.
func New() *Game {
	return &Game{current: 1}
}

func (g *Game) Phase() Phase { return g.phase }

// Current is the player (1 or 2) whose turn it is.
func (g *Game) Current() int { return g.current }

// Scores returns the totals of player 1 and player 2.
func (g *Game) Scores() (int, int) { return g.scores[0], g.scores[1] }

// Points returns a copy of the placed points with their current state.
func (g *Game) Points() []plotduel.Point {
	out := make([]plotduel.Point, len(g.points))
	copy(out, g.points)
	return out
}

func (g *Game) Rounds() []Round {
	out := make([]Round, len(g.rounds))
	copy(out, g.rounds)
	return out
}

// AddPoint places an active point. Coordinates must be unique.
func (g *Game) AddPoint(x, y float64) error {
	if g.phase != Setup {
		return ErrAlreadyRunning
	}
	p := plotduel.Pt(x, y)
	for _, q := range g.points {
		if q.SameCoords(p) {
			return fmt.Errorf("add %s: %w", p, ErrDuplicatePoint)
		}
	}
	g.points = append(g.points, p)
	return nil
}

// Start leaves the setup phase. At least one point must have been placed.
func (g *Game) Start() error {
	switch {
	case g.phase != Setup:
		return ErrAlreadyRunning
	case plotduel.ActiveCount(g.points) == 0:
		return ErrNoActivePoints
	}
	g.phase = Running
	plotduel.Logger().Debug("game started", "points", len(g.points))
	return nil
}

// Play scores equation for the current player and passes the turn. An
// unrecognised equation still consumes the turn. The game ends when no
// active point remains.
func (g *Game) Play(equation string) (Round, error) {
	switch g.phase {
	case Setup:
		return Round{}, ErrNotRunning
	case Over:
		return Round{}, ErrGameOver
	}

	c, res := plotduel.ScoreText(equation, g.points)
	// Keep the round's snapshot independent of live state.
	g.points = append([]plotduel.Point(nil), res.Points...)
	g.scores[g.current-1] += res.Awarded

	r := Round{
		Number:         len(g.rounds) + 1,
		Player:         g.current,
		Equation:       equation,
		Classification: c,
		Result:         res,
	}
	g.rounds = append(g.rounds, r)
	plotduel.Logger().Debug("round played",
		"round", r.Number,
		"player", r.Player,
		"kind", c.Kind.String(),
		"captured", len(res.Captured),
		"awarded", res.Awarded,
	)

	g.current = 3 - g.current
	if plotduel.ActiveCount(g.points) == 0 {
		g.phase = Over
		p1, p2 := g.Scores()
		plotduel.Logger().Info("game over", "player1", p1, "player2", p2, "winner", g.Winner())
	}
	return r, nil
}

// Winner returns 1 or 2 for the leading player and 0 on a tie. It is only
// final once Phase is Over.
func (g *Game) Winner() int {
	switch {
	case g.scores[0] > g.scores[1]:
		return 1
	case g.scores[1] > g.scores[0]:
		return 2
	}
	return 0
}

// Restart clears points, scores and history and returns to setup.
func (g *Game) Restart() {
	*g = Game{current: 1}
}
