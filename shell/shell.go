// Package shell implements the engine's line protocol: one command per
// line, one response line per command. It runs either as an interactive
// readline loop or on a single command given on the command line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/flankware/othello/alphabeta"
	"github.com/flankware/othello/cache"
	"github.com/flankware/othello/config"
	"github.com/flankware/othello/equity"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	solvers   *cache.Cache
	evaluator *equity.CombinedStaticCalculator

	autoplayCancel context.CancelFunc
	// foreground is set for one-shot execution, where background work
	// would be cancelled as soon as the command returns.
	foreground bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("error " + err.Error())
}

func newShellController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:       out,
		config:    cfg,
		solvers:   cache.NewCache(),
		evaluator: equity.NewCombinedStaticCalculator(),
	}
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newShellController(cfg, os.Stdout)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mothello>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc
}

// extractFields splits a line into a command, its positional arguments and
// its -key value options. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if !strings.HasPrefix(fields[i], "-") || isNumber(fields[i]) {
			args = append(args, fields[i])
			continue
		}
		if i+1 >= len(fields) {
			return nil, errWrongOptionSyntax
		}
		key := strings.TrimPrefix(fields[i], "-")
		options[key] = append(options[key], fields[i+1])
		i++
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func (sc *ShellController) handle(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "move":
		return sc.playMove(cmd)
	case "moves":
		return sc.moves(cmd)
	case "best":
		return sc.best(cmd)
	case "ranked":
		return sc.ranked(cmd)
	case "profile":
		return sc.profile(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "help", "h":
		return sc.help(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func (sc *ShellController) handleLine(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	return sc.handle(cmd)
}

func (sc *ShellController) respond(resp *Response, err error) {
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

// solverKey names a level's solver in the cache.
func solverKey(level int) string {
	return "solver-level-" + strconv.Itoa(level)
}

// solver returns the solver for a difficulty level, creating it on first
// use. It lives until the level is dropped.
func (sc *ShellController) solver(level int) (*alphabeta.Solver, error) {
	depth, err := sc.config.DepthForLevel(level)
	if err != nil {
		return nil, err
	}
	obj, err := sc.solvers.Get(sc.config, solverKey(level),
		func(cfg *config.Config, key string) (interface{}, error) {
			log.Debug().Int("level", level).Int("depth", depth).Msg("creating-solver")
			s, err := alphabeta.NewSolver(depth)
			if err != nil {
				return nil, err
			}
			return s, nil
		})
	if err != nil {
		return nil, err
	}
	return obj.(*alphabeta.Solver), nil
}

// Execute runs a single command line and then quits. Commands that
// normally run in the background, like autoplay, run to completion first.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	sc.foreground = true
	defer func() { sc.foreground = false }()
	sc.respond(sc.handleLine(line))
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		sc.respond(sc.handleLine(line))
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup stops any background self-play.
func (sc *ShellController) Cleanup() {
	if sc.autoplayCancel != nil {
		sc.autoplayCancel()
		sc.autoplayCancel = nil
	}
	log.Debug().Msg("shell cleaned up")
}
