package game

// Player represents one of the two players of a game.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "unknown player"
	}
}

// Status represents the outcome of a game at any point.
type Status int

const (
	InProgress Status = iota
	Player1Wins
	Player2Wins
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Player1Wins:
		return "Player 1 wins"
	case Player2Wins:
		return "Player 2 wins"
	default:
		return "unknown status"
	}
}

// StatusAfter returns the status of a finished game whose last move was made by mover.
// In every game here the player who makes the final move wins.
func StatusAfter(mover Player) Status {
	if mover == Player1 {
		return Player1Wins
	}
	return Player2Wins
}

// Game is a two-player game state. Like Puzzle, Play returns a new copy.
type Game[S any, M any] interface {
	NextPlayer() Player
	IsGameOver() bool
	Status() Status
	LegalMoves() []M
	IsLegalMove(M) bool
	Play(M) (S, error)
}

// TwoPhaseGame is a game whose moves are (source, target) pairs, with a
// separate check on the source so that it can be validated first.
type TwoPhaseGame[S any, T comparable] interface {
	Game[S, TwoPhaseMove[T]]
	IsLegalToMoveFrom(from T) bool
}
