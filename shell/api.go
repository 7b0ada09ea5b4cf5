package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/flankware/othello/automatic"
	"github.com/flankware/othello/board"
	"github.com/flankware/othello/config"
	"github.com/flankware/othello/move"
	"github.com/flankware/othello/notation"
)

var (
	ErrIllegalMove    = errors.New("not a valid move")
	ErrLevelNotNumber = errors.New("level must be an integer")
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func parseLevel(s string) (int, error) {
	level, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrLevelNotNumber
	}
	return level, nil
}

func joinMoves(prefix string, moves []move.Move) string {
	return strings.Join(append([]string{prefix},
		lo.Map(moves, func(m move.Move, _ int) string { return m.String() })...), " ")
}

// playMove handles `move <notation> <tile>`.
func (sc *ShellController) playMove(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("move <notation> <tile>")
	}
	b, err := notation.Parse(cmd.args[0])
	if err != nil {
		return nil, err
	}
	m, err := move.FromString(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if !b.IsLegal(m) {
		return nil, ErrIllegalMove
	}
	return msg("tile " + notation.Encode(b.MakeMove(m))), nil
}

// moves handles `moves <notation>`.
func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("moves <notation>")
	}
	b, err := notation.Parse(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(joinMoves("moves", b.LegalMoves())), nil
}

func (sc *ShellController) searchArgs(cmd *shellcmd, usage string) (board.Board, int, error) {
	if len(cmd.args) != 2 {
		return board.Board{}, 0, errors.New(usage)
	}
	b, err := notation.Parse(cmd.args[0])
	if err != nil {
		return board.Board{}, 0, err
	}
	level, err := parseLevel(cmd.args[1])
	if err != nil {
		return board.Board{}, 0, err
	}
	return b, level, nil
}

// best handles `best <notation> <level>`.
func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	b, level, err := sc.searchArgs(cmd, "best <notation> <level>")
	if err != nil {
		return nil, err
	}
	s, err := sc.solver(level)
	if err != nil {
		return nil, err
	}
	rm, ok := s.FindBestMove(b)
	if !ok {
		return msg("notile"), nil
	}
	return msg("tile " + rm.Move.String()), nil
}

// ranked handles `ranked <notation> <level>`.
func (sc *ShellController) ranked(cmd *shellcmd) (*Response, error) {
	b, level, err := sc.searchArgs(cmd, "ranked <notation> <level>")
	if err != nil {
		return nil, err
	}
	s, err := sc.solver(level)
	if err != nil {
		return nil, err
	}
	ranked := s.FindRankedMoves(b)
	return msg(joinMoves("tiles", lo.Map(ranked, func(r move.RankedMove, _ int) move.Move {
		return r.Move
	}))), nil
}

// profile handles `profile <level> log|drop`.
func (sc *ShellController) profile(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("profile <level> log|drop")
	}
	level, err := parseLevel(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if _, err := sc.config.DepthForLevel(level); err != nil {
		return nil, err
	}
	switch cmd.args[1] {
	case "log":
		s, err := sc.solver(level)
		if err != nil {
			return nil, err
		}
		log.Info().Int("level", level).Msg("logging runs and cache data")
		s.History().Log()
		if zerolog.GlobalLevel() <= zerolog.DebugLevel {
			if err := s.TranspositionTable().Dump(log.Logger); err != nil {
				return nil, err
			}
		}
		return msg("logged runs and cache data"), nil
	case "drop":
		sc.solvers.Drop(solverKey(level))
		return msg(fmt.Sprintf("dropped solver for level %d", level)), nil
	default:
		return nil, errors.New("profile flag must be log or drop")
	}
}

// autoplay handles `autoplay <games> <level1> <level2> [-threads n] [-file f]`
// and `autoplay stop`.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		if automatic.IsPlaying.Value() == 0 || sc.autoplayCancel == nil {
			return nil, errors.New("no games are being played")
		}
		sc.autoplayCancel()
		sc.autoplayCancel = nil
		return msg("stopping autoplay"), nil
	}
	if len(cmd.args) != 3 {
		return nil, errors.New("autoplay <games> <level1> <level2> [-threads n] [-file f]")
	}
	numGames, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	level1, err := parseLevel(cmd.args[1])
	if err != nil {
		return nil, err
	}
	level2, err := parseLevel(cmd.args[2])
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	outputFile := cmd.options.String("file")
	if outputFile == "" {
		outputFile = sc.config.GetString(config.ConfigAutoplayOutput)
	}

	if sc.foreground {
		return sc.autoplayForeground(numGames, threads, level1, level2, outputFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	err = automatic.StartCompVCompGames(ctx, sc.config, numGames, threads, level1, level2, outputFile)
	if err != nil {
		cancel()
		return nil, err
	}
	sc.autoplayCancel = cancel
	return msg(fmt.Sprintf("playing %d games, level %d vs level %d; writing to %s",
		numGames, level1, level2, outputFile)), nil
}

// autoplayForeground plays every game before returning. An interrupt stops
// the games early and keeps what was written.
func (sc *ShellController) autoplayForeground(numGames, threads, level1, level2 int,
	outputFile string) (*Response, error) {

	logfile, err := os.Create(outputFile)
	if err != nil {
		return nil, err
	}
	defer logfile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = automatic.PlayCompVCompGames(ctx, sc.config, logfile, numGames, threads, level1, level2)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("played %d games, level %d vs level %d; wrote %s",
		automatic.CVCCounter.Value(), level1, level2, outputFile)), nil
}

// show handles `show <notation>`.
func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("show <notation>")
	}
	b, err := notation.Parse(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.evaluator.LogBreakdown(b)
	return msg(b.ToDisplayText()), nil
}
