// Package automatic plays computer-vs-computer games between two difficulty
// levels and logs every turn, for comparing levels against each other.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/flankware/othello/alphabeta"
	"github.com/flankware/othello/board"
	"github.com/flankware/othello/config"
)

const PassMove = "pass"

// GameRunner is the master struct here for the automatic game logic. Black
// is played by the first level and white by the second. The runner owns
// both solvers; they are never shared with other runners.
type GameRunner struct {
	config  *config.Config
	logchan chan string

	levels  [2]int
	solvers [2]*alphabeta.Solver

	board  board.Board
	gameID int
	turn   int
}

// NewGameRunner builds a runner with a fresh solver for each side. logchan
// may be nil if turns should not be logged.
func NewGameRunner(logchan chan string, cfg *config.Config, level1, level2 int) (*GameRunner, error) {
	r := &GameRunner{config: cfg, logchan: logchan, levels: [2]int{level1, level2}}
	for i, level := range r.levels {
		depth, err := cfg.DepthForLevel(level)
		if err != nil {
			return nil, err
		}
		r.solvers[i], err = alphabeta.NewSolver(depth)
		if err != nil {
			return nil, err
		}
	}
	r.StartGame(0)
	return r, nil
}

// StartGame resets the board to the opening position.
func (r *GameRunner) StartGame(gameID int) {
	r.board = board.NewBoard()
	r.gameID = gameID
	r.turn = 0
}

func (r *GameRunner) Playing() bool {
	return !r.board.GameOver()
}

func (r *GameRunner) Board() board.Board {
	return r.board
}

func (r *GameRunner) Turn() int {
	return r.turn
}

func playerIdx(b board.Board) int {
	if b.BlackMove() {
		return 0
	}
	return 1
}

// PlayBestTurn plays the solver's best move for the side on turn, or passes
// if that side cannot move. It returns what was played.
func (r *GameRunner) PlayBestTurn() string {
	color := r.board.ColorToMove()
	played := PassMove
	best, ok := r.solvers[playerIdx(r.board)].FindBestMove(r.board)
	if ok {
		r.board = r.board.MakeMove(best.Move)
		played = best.Move.String()
	} else {
		r.board = r.board.Pass()
	}
	r.turn++

	if r.logchan != nil {
		black, white := r.board.Counts()
		r.logchan <- fmt.Sprintf("%v,%v,%c,%v,%v,%v\n",
			r.gameID, r.turn, color.Symbol(), played, black, white)
	}
	return played
}

// PlayGame plays a full game. It stops early with the context's error if
// ctx is cancelled.
func (r *GameRunner) PlayGame(ctx context.Context, gameID int) error {
	r.StartGame(gameID)
	for r.Playing() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.PlayBestTurn()
	}
	black, white := r.board.Counts()
	log.Debug().Int("game-id", gameID).Int("turns", r.turn).
		Int("black", black).Int("white", white).Msg("game-over")
	return nil
}
