package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/flankware/othello/config"
)

const CSVHeader = "gameID,turn,player,move,black,white\n"

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")
	ErrBadGameCount   = errors.New("number of games must be positive")

	playingMu sync.Mutex
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

func acquire() error {
	playingMu.Lock()
	defer playingMu.Unlock()
	if IsPlaying.Value() > 0 {
		return ErrAlreadyPlaying
	}
	IsPlaying.Set(1)
	return nil
}

func release() {
	IsPlaying.Set(0)
}

func validate(cfg *config.Config, numGames, level1, level2 int) error {
	if numGames < 1 {
		return ErrBadGameCount
	}
	for _, level := range []int{level1, level2} {
		if _, err := cfg.DepthForLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// PlayCompVCompGames plays numGames games over threads workers and writes
// one CSV row per turn to w. It blocks until every game is done or ctx is
// cancelled; cancellation is not an error.
func PlayCompVCompGames(ctx context.Context, cfg *config.Config, w io.Writer,
	numGames, threads, level1, level2 int) error {

	if err := validate(cfg, numGames, level1, level2); err != nil {
		return err
	}
	if err := acquire(); err != nil {
		return err
	}
	defer release()
	return playGames(ctx, cfg, w, numGames, threads, level1, level2)
}

// StartCompVCompGames plays games in the background, writing to
// outputFilename. Use the context to stop early.
func StartCompVCompGames(ctx context.Context, cfg *config.Config,
	numGames, threads, level1, level2 int, outputFilename string) error {

	if err := validate(cfg, numGames, level1, level2); err != nil {
		return err
	}
	if err := acquire(); err != nil {
		return err
	}
	logfile, err := os.Create(outputFilename)
	if err != nil {
		release()
		return err
	}

	go func() {
		defer release()
		defer logfile.Close()
		err := playGames(ctx, cfg, logfile, numGames, threads, level1, level2)
		if err != nil {
			log.Err(err).Msg("autoplay-failed")
			return
		}
		log.Info().Str("output", outputFilename).Int64("games", CVCCounter.Value()).
			Msg("autoplay-finished")
	}()
	return nil
}

func playGames(ctx context.Context, cfg *config.Config, w io.Writer,
	numGames, threads, level1, level2 int) error {

	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan int, 100)
	logChan := make(chan string, 100)

	logDone := make(chan error, 1)
	go func() {
		_, err := io.WriteString(w, CSVHeader)
		for msg := range logChan {
			if err == nil {
				_, err = io.WriteString(w, msg)
			}
		}
		log.Debug().Msg("exiting turn logger goroutine")
		logDone <- err
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg, level1, level2)
			if err != nil {
				return err
			}
			for gameID := range jobs {
				if err := r.PlayGame(gctx, gameID); err != nil {
					return err
				}
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 1; i <= numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("got stop signal, exiting soon...")
				return nil
			}
			if i%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i)
			}
		}
		log.Debug().Msg("finished queueing all jobs")
		return nil
	})

	err := g.Wait()
	close(logChan)
	if werr := <-logDone; err == nil {
		err = werr
	}
	if errors.Is(err, context.Canceled) {
		log.Info().Int64("games", CVCCounter.Value()).Msg("autoplay-stopped")
		return nil
	}
	return err
}
