// Package coins implements a two-player coin sliding game.
//
// The game is played on a square board with a coin on each corner square.
// Players move in alternating turns, sliding a coin to an 8-adjacent empty
// square. The player who moves a coin to the centre square wins.
package coins

import (
	"cmp"
	"fmt"
	"statesearch/game"
	"strconv"
	"strings"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 5

// Position identifies a square of the board.
type Position struct {
	Row int
	Col int
}

func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, other.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) onBoard() bool {
	return 0 <= p.Row && p.Row < BoardSize && 0 <= p.Col && p.Col < BoardSize
}

// ParsePosition reads a position given as two whitespace separated integers.
func ParsePosition(input string) (Position, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("expected row and column, got %q", strings.TrimSpace(input))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil || row < 0 {
		return Position{}, fmt.Errorf("invalid row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil || col < 0 {
		return Position{}, fmt.Errorf("invalid column %q", fields[1])
	}
	return Position{Row: row, Col: col}, nil
}

type Move = game.TwoPhaseMove[Position]

// State is a value: the board is an array, so copies never share squares.
type State struct {
	board  [BoardSize][BoardSize]bool
	player game.Player
}

var _ game.TwoPhaseGame[State, Position] = State{}

// New returns the initial state of the game.
func New() State {
	var s State
	last := BoardSize - 1
	s.board[0][0] = true
	s.board[0][last] = true
	s.board[last][0] = true
	s.board[last][last] = true
	s.player = game.Player1
	return s
}

func centre() Position {
	return Position{Row: BoardSize / 2, Col: BoardSize / 2}
}

func (s State) NextPlayer() game.Player {
	return s.player
}

func (s State) IsGameOver() bool {
	return s.hasCoin(centre())
}

func (s State) Status() game.Status {
	if !s.IsGameOver() {
		return game.InProgress
	}
	return game.StatusAfter(s.player.Opponent())
}

// IsLegalToMoveFrom reports whether from holds a coin that has somewhere to go.
func (s State) IsLegalToMoveFrom(from Position) bool {
	return from.onBoard() && s.hasCoin(from) && len(s.emptyNeighbors(from)) > 0
}

func (s State) IsLegalMove(move Move) bool {
	return move.From.onBoard() &&
		s.hasCoin(move.From) &&
		move.To.onBoard() &&
		!s.hasCoin(move.To) &&
		isKingMove(move.From, move.To)
}

// LegalMoves returns every legal move ordered by source, then target.
func (s State) LegalMoves() []Move {
	if s.IsGameOver() {
		return nil
	}
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			from := Position{Row: row, Col: col}
			if !s.hasCoin(from) {
				continue
			}
			for _, to := range s.emptyNeighbors(from) {
				moves = append(moves, game.NewTwoPhaseMove(from, to))
			}
		}
	}
	return moves
}

// Play slides the coin and passes the turn.
func (s State) Play(move Move) (State, error) {
	if !s.IsLegalMove(move) {
		return s, fmt.Errorf("cannot move %v: %w", move, game.ErrIllegalMove)
	}
	s.board[move.From.Row][move.From.Col] = false
	s.board[move.To.Row][move.To.Col] = true
	s.player = s.player.Opponent()
	return s, nil
}

func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if s.board[row][col] {
				sb.WriteString("O ")
			} else {
				sb.WriteString("_ ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s State) hasCoin(p Position) bool {
	return s.board[p.Row][p.Col]
}

// emptyNeighbors returns the empty 8-adjacent squares of p in row-major order.
func (s State) emptyNeighbors(p Position) []Position {
	var neighbors []Position
	for row := p.Row - 1; row <= p.Row+1; row++ {
		for col := p.Col - 1; col <= p.Col+1; col++ {
			n := Position{Row: row, Col: col}
			if n == p || !n.onBoard() {
				continue
			}
			if !s.hasCoin(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func isKingMove(from, to Position) bool {
	dr := abs(from.Row - to.Row)
	dc := abs(from.Col - to.Col)
	return dr+dc == 1 || dr*dc == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
