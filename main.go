// wordle-bench simulates Wordle games to benchmark guessing strategies.
//
// Usage:
//
//	wordle-bench [-config file.yml] run   [-games n] [-all] [-seed n] [-workers n] [-max-attempts n] [-quiet] [-v]
//	wordle-bench [-config file.yml] play  [-answer WORD | -daily] [-max-attempts n]
//	wordle-bench score GUESS ANSWER
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/bench/internal/bench"
	"github.com/robalobadob/wordle/apps/bench/internal/config"
	"github.com/robalobadob/wordle/apps/bench/internal/game"
	"github.com/robalobadob/wordle/apps/bench/internal/solver"
	"github.com/robalobadob/wordle/apps/bench/internal/store"
	"github.com/robalobadob/wordle/apps/bench/internal/wordle"
	"github.com/robalobadob/wordle/apps/bench/internal/words"
)

var flagConfig = flag.String("config", "", "YAML config file (environment variables override it)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wordle-bench [-config file] <run|play|score> [flags]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	conf, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	initLogger(conf)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flag.Args()[1:]
	switch cmd := flag.Arg(0); cmd {
	case "run":
		err = runBench(ctx, conf, args)
	case "play":
		err = playOne(conf, args)
	case "score":
		err = score(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		flag.Usage()
	}
	if err != nil {
		log.Fatal().Err(err).Msg(flag.Arg(0) + " failed")
	}
}

func initLogger(conf *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", conf.LogLevel).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func loadLists(conf *config.Config) (*words.Lists, error) {
	lists, err := words.Load(conf.Words.AnswersFile, conf.Words.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	a, g := lists.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return lists, nil
}

func newNaive(valid []wordle.Word) solver.Solver { return solver.NewNaive(valid) }

func runBench(ctx context.Context, conf *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	games := fs.Int("games", conf.Bench.Games, "number of games with random answers")
	all := fs.Bool("all", false, "play every answer once instead of random answers")
	seed := fs.Uint64("seed", conf.Bench.Seed, "seed for answer selection (0 picks one from the clock)")
	workers := fs.Int("workers", conf.Bench.Workers, "parallel games (0 uses every CPU)")
	maxAttempts := fs.Int("max-attempts", conf.Bench.MaxAttempts, "guesses allowed per game")
	quiet := fs.Bool("quiet", false, "do not draw a progress bar")
	verbose := fs.Bool("v", false, "print the guesses of every unsolved game")
	_ = fs.Parse(args)

	lists, err := loadLists(conf)
	if err != nil {
		return err
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	opts := bench.Options{
		Games:       *games,
		Seed:        *seed,
		MaxAttempts: *maxAttempts,
		Workers:     *workers,
		Progress:    !*quiet,
	}
	if *all {
		opts.Games = 0
	}

	failures := store.NewMemoryStore()
	res, err := bench.Run(ctx, opts, lists, newNaive, failures)
	if err != nil {
		return err
	}

	fmt.Print(res.Stats)
	byAnswer := bench.ByAnswer(res.Outcomes)
	for _, m := range bench.Metrics {
		fmt.Println("  ", m.Run(byAnswer))
	}

	if *verbose {
		failed, err := failures.List(ctx)
		if err != nil {
			return err
		}
		for _, g := range failed {
			fmt.Printf("not solved: %v (game %s)\n", g.Answer, g.ID)
			for _, r := range g.Guesses {
				fmt.Println("   ", r)
			}
		}
	}
	return nil
}

func playOne(conf *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	answerFlag := fs.String("answer", "", "secret word (default: a random answer)")
	daily := fs.Bool("daily", false, "use the answer of the day")
	maxAttempts := fs.Int("max-attempts", conf.Bench.MaxAttempts, "guesses allowed")
	_ = fs.Parse(args)

	lists, err := loadLists(conf)
	if err != nil {
		return err
	}

	var answer wordle.Word
	switch {
	case *answerFlag != "":
		if answer, err = wordle.Parse(*answerFlag); err != nil {
			return err
		}
		if !lists.IsAllowed(answer) {
			log.Warn().Stringer("answer", answer).Msg("answer is not in the allowed list; the solver cannot find it")
		}
	case *daily:
		answer = lists.Daily(time.Now(), conf.DailySalt)
	default:
		answer = lists.Answers[rand.IntN(len(lists.Answers))]
	}

	g, err := game.Play(solver.NewNaive(lists.Allowed), answer, *maxAttempts)
	for i, r := range g.Guesses {
		fmt.Printf("%2d  %v\n", i+1, r)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s in %d guesses\n", g.State(), g.Attempts())
	return nil
}

func score(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("score needs GUESS and ANSWER, got %d arguments", len(args))
	}
	guess, err := wordle.Parse(args[0])
	if err != nil {
		return err
	}
	answer, err := wordle.Parse(args[1])
	if err != nil {
		return err
	}
	fmt.Println(wordle.NewResponse(guess, answer).Placements())
	return nil
}
