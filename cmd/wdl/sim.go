package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordlesieve/engine"
	"github.com/powellquiring/wordlesieve/feedback"
)

type Game struct {
	Solution  string
	Remaining []string
}

// simulate plays firstWords against each solution, every game in its own session
func simulate(ctx context.Context, w io.Writer, globalConfig GlobalConfiguration, firstWords []string, solutions []string) error {
	if len(firstWords) == 0 {
		return cli.Exit("must supply first words with --first", 1)
	}
	dictionary := engine.NewCandidateList(globalConfig.words)
	for i, word := range firstWords {
		firstWords[i] = feedback.Normalize(word)
		if err := feedback.ValidateGuess(firstWords[i], dictionary); err != nil {
			return cli.Exit("first word: "+err.Error(), 2)
		}
	}
	if len(solutions) == 0 {
		solutions = dictionary.Words()
	}
	for i, solution := range solutions {
		solutions[i] = feedback.Normalize(solution)
		if err := feedback.ValidateGuess(solutions[i], dictionary); err != nil {
			return cli.Exit("solution: "+err.Error(), 3)
		}
	}

	var bar *progressbar.ProgressBar
	if globalConfig.progress {
		bar = progressbar.Default(int64(len(solutions)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	games := make([]Game, len(solutions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, solution := range solutions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := engine.New(globalConfig.words)
			for _, guess := range firstWords {
				greens, yellows := feedback.ScorePatterns(solution, guess)
				s.ApplyGuess(guess, greens, yellows)
				if !s.Contains(solution) {
					return fmt.Errorf("%s eliminated by %s %s", solution, guess, feedback.Join(greens, yellows))
				}
			}
			games[i] = Game{Solution: solution, Remaining: s.Candidates()}
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return cli.Exit(err.Error(), 4)
	}
	if err := bar.Finish(); err != nil {
		return err
	}
	globalConfig.logger.Info().Int("games", len(games)).Strs("first", firstWords).Msg("simulated")
	printGames(w, games)
	return nil
}

// printGames groups the games by how many candidates they were left with
func printGames(w io.Writer, games []Game) {
	sortedGames := make(map[int][]Game)
	for _, game := range games {
		sortedGames[len(game.Remaining)] = append(sortedGames[len(game.Remaining)], game)
	}
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, remaining := range keys {
		games := sortedGames[remaining]
		fmt.Fprintln(w, remaining, len(games), " ---------------------")
		for _, game := range games {
			fmt.Fprint(w, game.Solution, ":")
			for _, word := range game.Remaining {
				fmt.Fprint(w, " ", word)
			}
			fmt.Fprintln(w)
		}
	}
}
