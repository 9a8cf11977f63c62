// cmd/plotduel/main.go — two players, one keyboard
//
// Setup: enter points as "x y" or "x,y", then "play".
// Each turn: enter a line (y = 2x + 1) or a circle ((x-1)^2 + (y+2)^2 = 9).
// "restart" starts over, "quit" exits.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/njchilds90/plotduel"
	"github.com/njchilds90/plotduel/game"
	"github.com/njchilds90/plotduel/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	verbose := flag.Bool("v", false, "log rounds at debug level")
	flag.Parse()
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	plotduel.SetLogger(cfg.NewLogger())

	if err := run(os.Stdin, os.Stdout, game.New()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, g *game.Game) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Place points as \"x y\", then type play.")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit", "exit":
			return nil
		case "restart":
			g.Restart()
			fmt.Fprintln(out, "New game. Place points as \"x y\", then type play.")
			continue
		}

		switch g.Phase() {
		case game.Setup:
			setup(out, g, line)
		case game.Running:
			turn(out, g, line)
		case game.Over:
			fmt.Fprintln(out, "The game is over. Type restart or quit.")
		}
	}
	return sc.Err()
}

func setup(out io.Writer, g *game.Game, line string) {
	if line == "play" {
		if err := g.Start(); err != nil {
			fmt.Fprintln(out, "Cannot start:", err)
			return
		}
		fmt.Fprintf(out, "Player %d to move.\n", g.Current())
		return
	}
	x, y, err := parseCoords(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if err := g.AddPoint(x, y); err != nil {
		if errors.Is(err, game.ErrDuplicatePoint) {
			fmt.Fprintf(out, "%s was already added.\n", plotduel.Pt(x, y))
			return
		}
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "Added %s.\n", plotduel.Pt(x, y))
}

func turn(out io.Writer, g *game.Game, line string) {
	r, err := g.Play(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "%s -> player %d scored %d.\n", r.Classification, r.Player, r.Result.Awarded)
	p1, p2 := g.Scores()
	fmt.Fprintf(out, "Player 1: %d, Player 2: %d\n", p1, p2)
	if g.Phase() != game.Over {
		fmt.Fprintf(out, "Player %d to move.\n", g.Current())
		return
	}
	if w := g.Winner(); w != 0 {
		fmt.Fprintf(out, "Player %d wins!\n", w)
	} else {
		fmt.Fprintln(out, "It's a tie.")
	}
}

func parseCoords(s string) (float64, float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '(' || r == ')' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want two coordinates, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return x, y, nil
}
