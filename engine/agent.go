package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"statesearch/game"

	"github.com/logrusorgru/aurora"
	"golang.org/x/exp/rand"
)

var ErrNoInput = errors.New("no more input")

// Console reads moves typed by human players, one per line.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return c.scanner.Text(), nil
}

func (c *Console) complain(format string, args ...any) {
	fmt.Fprintln(c.out, aurora.Red(fmt.Sprintf(format, args...)))
}

// HumanAgent asks for a whole move on one line.
type HumanAgent[S game.Game[S, M], M any] struct {
	console *Console
	parse   func(string) (M, error)
}

func NewHumanAgent[S game.Game[S, M], M any](console *Console, parse func(string) (M, error)) *HumanAgent[S, M] {
	return &HumanAgent[S, M]{console: console, parse: parse}
}

// FindMove prompts until a legal move is entered.
func (a *HumanAgent[S, M]) FindMove(state S) (M, error) {
	for {
		line, err := a.console.ask("Your move: ")
		if err != nil {
			var none M
			return none, err
		}
		move, err := a.parse(line)
		if err != nil {
			a.console.complain("Invalid input: %v", err)
			continue
		}
		if !state.IsLegalMove(move) {
			a.console.complain("Illegal move: %v", move)
			continue
		}
		return move, nil
	}
}

// TwoPhaseHumanAgent asks for the source of a move, then for its target.
type TwoPhaseHumanAgent[S game.TwoPhaseGame[S, T], T comparable] struct {
	console *Console
	parse   func(string) (T, error)
}

func NewTwoPhaseHumanAgent[S game.TwoPhaseGame[S, T], T comparable](console *Console, parse func(string) (T, error)) *TwoPhaseHumanAgent[S, T] {
	return &TwoPhaseHumanAgent[S, T]{console: console, parse: parse}
}

// FindMove prompts until a legal move is entered. An illegal target starts over from the source.
func (a *TwoPhaseHumanAgent[S, T]) FindMove(state S) (game.TwoPhaseMove[T], error) {
	for {
		from, err := a.read("Move from: ")
		if err != nil {
			return game.TwoPhaseMove[T]{}, err
		}
		if !state.IsLegalToMoveFrom(from) {
			a.console.complain("Cannot move from %v", from)
			continue
		}

		to, err := a.read("Move to: ")
		if err != nil {
			return game.TwoPhaseMove[T]{}, err
		}
		move := game.NewTwoPhaseMove(from, to)
		if !state.IsLegalMove(move) {
			a.console.complain("Illegal move: %v", move)
			continue
		}
		return move, nil
	}
}

func (a *TwoPhaseHumanAgent[S, T]) read(prompt string) (T, error) {
	for {
		line, err := a.console.ask(prompt)
		if err != nil {
			var none T
			return none, err
		}
		locus, err := a.parse(line)
		if err != nil {
			a.console.complain("Invalid input: %v", err)
			continue
		}
		return locus, nil
	}
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent[S game.Game[S, M], M any] struct {
	rng *rand.Rand
}

func NewRandomAgent[S game.Game[S, M], M any](seed uint64) *RandomAgent[S, M] {
	return &RandomAgent[S, M]{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent[S, M]) FindMove(state S) (M, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		var none M
		return none, fmt.Errorf("no legal moves in %v", state)
	}
	return moves[a.rng.Intn(len(moves))], nil
}
