package engine

import (
	"errors"
	"fmt"
	"io"
	"statesearch/game"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
)

const MaxTurns = 500

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrTooManyTurns = errors.New("turn limit reached without a winner")
)

// Agent chooses the next move of one player.
type Agent[S any, M any] interface {
	FindMove(state S) (M, error)
}

// Update records a move played during a game.
type Update[M any] struct {
	Turn   int
	Player game.Player
	Move   M
}

// Engine conducts a two-player game, alternating turns between the agents
// and refusing any move the current state does not allow.
type Engine[S game.Game[S, M], M any] struct {
	State    S
	Agents   [2]Agent[S, M] // Indexed by player: Player1 at 0, Player2 at 1
	History  []Update[M]
	MaxTurns int
	out      io.Writer
}

// LocalEngine returns an engine starting from initial. Board and results are written to out.
func LocalEngine[S game.Game[S, M], M any](initial S, agents []Agent[S, M], out io.Writer) *Engine[S, M] {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine[S, M]{
		State:    initial,
		Agents:   [2]Agent[S, M]{agents[0], agents[1]},
		MaxTurns: MaxTurns,
		out:      out,
	}
}

// Play applies move for the player to move, after checking that it is legal.
func (e *Engine[S, M]) Play(move M) error {
	if e.State.IsGameOver() {
		return ErrGameOver
	}
	if !e.State.IsLegalMove(move) {
		return fmt.Errorf("%s cannot play %v: %w", e.State.NextPlayer(), move, game.ErrIllegalMove)
	}

	player := e.State.NextPlayer()
	next, err := e.State.Play(move)
	if err != nil {
		return err
	}
	e.History = append(e.History, Update[M]{
		Turn:   len(e.History) + 1,
		Player: player,
		Move:   move,
	})
	e.State = next
	return nil
}

// Run executes the game loop until the game is over or MaxTurns moves have been played.
func (e *Engine[S, M]) Run() (game.Status, error) {
	log.Info().Msgf("%s is starting", e.State.NextPlayer())

	for !e.State.IsGameOver() {
		if len(e.History) >= e.MaxTurns {
			log.Warn().Msgf("stopped after %d turns (no winner yet)", len(e.History))
			return game.InProgress, ErrTooManyTurns
		}

		player := e.State.NextPlayer()
		fmt.Fprintf(e.out, "\n%v\n%s to move\n", e.State, aurora.Bold(player))

		move, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return game.InProgress, fmt.Errorf("%s could not find a move: %w", player, err)
		}
		if err := e.Play(move); err != nil {
			return game.InProgress, err
		}
		log.Debug().Msgf("turn %d: %s played %v", len(e.History), player, move)
	}

	status := e.State.Status()
	fmt.Fprintf(e.out, "\n%v\n%s\n", e.State, aurora.Green(status))
	log.Info().Msgf("game over after %d turns: %s", len(e.History), status)
	return status, nil
}
