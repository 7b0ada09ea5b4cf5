package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/flankware/othello/config"
)

var DefaultConfig = config.DefaultConfig()

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestCompVsComp(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 200)
	// levels 1 and 2 both search a single ply.
	runner, err := NewGameRunner(logchan, DefaultConfig, 1, 2)
	is.NoErr(err)

	go func() {
		defer close(logchan)
		is.NoErr(runner.PlayGame(context.Background(), 7))
	}()

	var rows []string
	for msg := range logchan {
		rows = append(rows, msg)
	}

	is.True(!runner.Playing())
	is.True(runner.Turn() >= 9)
	is.Equal(len(rows), runner.Turn())
	is.True(strings.HasPrefix(rows[0], "7,1,B,"))

	black, white := runner.Board().Counts()
	last := strings.Split(strings.TrimSpace(rows[len(rows)-1]), ",")
	is.Equal(len(last), 6)
	is.Equal(last[4], strconv.Itoa(black))
	is.Equal(last[5], strconv.Itoa(white))
}

func TestPlayGamesWritesCSV(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := PlayCompVCompGames(context.Background(), DefaultConfig, &buf, 3, 2, 1, 2)
	is.NoErr(err)
	is.Equal(CVCCounter.Value(), int64(3))
	is.Equal(IsPlaying.Value(), int64(0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(lines[0]+"\n", CSVHeader)

	// single-ply search is exact, so every game is the same game.
	games := map[string][]string{}
	for _, line := range lines[1:] {
		gameID, rest, ok := strings.Cut(line, ",")
		is.True(ok)
		games[gameID] = append(games[gameID], rest)
	}
	is.Equal(len(games), 3)
	is.Equal(games["1"], games["2"])
	is.Equal(games["2"], games["3"])
}

func TestCancelledBeforeStart(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := PlayCompVCompGames(ctx, DefaultConfig, &buf, 50, 2, 1, 1)
	is.NoErr(err)
	is.Equal(CVCCounter.Value(), int64(0))
	is.Equal(buf.String(), CSVHeader)
}

func TestRejectsBadArguments(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := PlayCompVCompGames(context.Background(), DefaultConfig, &buf, 1, 1, 1, 99)
	is.True(errors.Is(err, config.ErrBadLevel))
	err = PlayCompVCompGames(context.Background(), DefaultConfig, &buf, 0, 1, 1, 1)
	is.Equal(err, ErrBadGameCount)
}

func TestOneSessionAtATime(t *testing.T) {
	is := is.New(t)
	is.NoErr(acquire())
	defer release()
	var buf bytes.Buffer
	err := PlayCompVCompGames(context.Background(), DefaultConfig, &buf, 1, 1, 1, 1)
	is.Equal(err, ErrAlreadyPlaying)
}

func TestStartInBackground(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "autoplay.csv")
	err := StartCompVCompGames(context.Background(), DefaultConfig, 2, 1, 1, 1, out)
	is.NoErr(err)

	deadline := time.Now().Add(30 * time.Second)
	for IsPlaying.Value() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	is.Equal(IsPlaying.Value(), int64(0))
	is.Equal(CVCCounter.Value(), int64(2))

	contents, err := os.ReadFile(out)
	is.NoErr(err)
	is.True(strings.HasPrefix(string(contents), CSVHeader))
}
