// internal/bench/bench.go
//
// Benchmark runner: plays many independent games in parallel and aggregates
// the results.
//
// Each game gets a fresh solver from the factory and its own game.Game, so
// workers share no mutable state. Outcomes are written to distinct slots of a
// preallocated slice and summarized after every worker is done.

package bench

import (
	"context"
	"errors"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/bench/internal/game"
	"github.com/robalobadob/wordle/apps/bench/internal/solver"
	"github.com/robalobadob/wordle/apps/bench/internal/store"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
	"github.com/robalobadob/wordle/apps/bench/internal/words"
)

// ErrNoAnswers is returned when there is nothing to play.
var ErrNoAnswers = errors.New("bench: no answers to play")

// Options controls a benchmark run.
type Options struct {
	Games       int    // games with random answers; <= 0 plays every answer once
	Seed        uint64 // seed for answer selection
	MaxAttempts int    // per-game cap; <= 0 selects game.DefaultMaxAttempts
	Workers     int    // parallel games; <= 0 uses GOMAXPROCS
	Progress    bool   // draw a progress bar
}

// Outcome is the result of one game.
type Outcome struct {
	GameID   string
	Answer   wordle.Word
	Attempts int
	Solved   bool
}

// Result holds every outcome of a run and their summary.
type Result struct {
	Outcomes []Outcome
	Stats    Stats
}

// Run plays the games described by opts. Unsolved games are saved to
// failures when it is not nil. The first solver error stops the run.
func Run(ctx context.Context, opts Options, lists *words.Lists, newSolver solver.Factory, failures store.Store) (*Result, error) {
	answers := pickAnswers(opts, lists.Answers)
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Info().
		Int("games", len(answers)).
		Int("workers", workers).
		Uint64("seed", opts.Seed).
		Int("maxAttempts", opts.MaxAttempts).
		Msg("starting benchmark")

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(answers)), "playing")
	}

	start := time.Now()
	outcomes := make([]Outcome, len(answers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, answer := range answers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			played, err := game.Play(newSolver(lists.Allowed), answer, opts.MaxAttempts)
			if err != nil {
				return err
			}
			outcomes[i] = Outcome{
				GameID:   played.ID,
				Answer:   answer,
				Attempts: played.Attempts(),
				Solved:   played.Won,
			}
			if !played.Won {
				log.Debug().Str("gameId", played.ID).Stringer("answer", answer).Msg("not solved")
				if failures != nil {
					if err := failures.Save(gctx, played); err != nil {
						return err
					}
				}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	stats := Summarize(outcomes)
	stats.Duration = time.Since(start)

	log.Info().
		Int("games", stats.Games).
		Int("fails", stats.Fails).
		Int("min", stats.Min).
		Int("max", stats.Max).
		Float64("mean", stats.Mean).
		Dur("elapsed", stats.Duration).
		Msg("benchmark finished")

	return &Result{Outcomes: outcomes, Stats: stats}, nil
}

// pickAnswers returns every answer once when opts.Games <= 0, otherwise
// opts.Games answers drawn with replacement from a PCG seeded by opts.Seed.
func pickAnswers(opts Options, answers []wordle.Word) []wordle.Word {
	if len(answers) == 0 {
		return nil
	}
	if opts.Games <= 0 {
		return append([]wordle.Word(nil), answers...)
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	out := make([]wordle.Word, opts.Games)
	for i := range out {
		out[i] = answers[rng.IntN(len(answers))]
	}
	return out
}
