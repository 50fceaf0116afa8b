package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlesieve/wordlist"
)

type GlobalConfiguration struct {
	words    []string
	progress bool
	guesses  int
	save     string
	logger   zerolog.Logger
}

type flags struct {
	wordsPath string
	count     int
	progress  bool
	logLevel  string
	guesses   int
	save      string
}

func globalConfiguration(f flags) (GlobalConfiguration, error) {
	logger := newLogger(f.logLevel)
	words, err := wordlist.LoadOrDefault(f.wordsPath)
	if err != nil {
		return GlobalConfiguration{}, cli.Exit(err.Error(), 1)
	}
	if f.count > 0 && f.count < len(words) {
		words = words[:f.count]
	}
	logger.Debug().Str("path", f.wordsPath).Int("words", len(words)).Msg("loaded word list")
	return GlobalConfiguration{
		words:    words,
		progress: f.progress,
		guesses:  f.guesses,
		save:     f.save,
		logger:   logger,
	}, nil
}

func newLogger(level string) zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return log.Logger
}

func main() {
	_ = godotenv.Load()

	f := flags{}
	cmd := &cli.Command{
		Name:   "wdl",
		Usage:  "narrow a wordle word list down to the words consistent with the feedback",
		Reader: os.Stdin,
		Writer: os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "word list file, words separated by commas or newlines. Empty uses the built in list",
				Sources:     cli.EnvVars("WDL_WORDS"),
				Destination: &f.wordsPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &f.count,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Sources:     cli.EnvVars("WDL_PROGRESS"),
				Destination: &f.progress,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &f.logLevel,
			},
			&cli.IntFlag{
				Name:        "guesses",
				Value:       6,
				Aliases:     []string{"g"},
				Usage:       "guesses allowed in the play command",
				Sources:     cli.EnvVars("WDL_GUESSES"),
				Destination: &f.guesses,
			},
			&cli.StringFlag{
				Name:        "save",
				Usage:       "file rewritten with the possible words after every guess of the play command",
				Sources:     cli.EnvVars("WDL_SAVE"),
				Destination: &f.save,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "filter",
				Usage: `filter guess colours [guess colours]...
				Print the words left after each guess with its colours, r for gray, y for yellow, g for green.
				wdl filter crane rryrg
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess colours", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess colours pair", 2)
					}
					globalConfig, err := globalConfiguration(f)
					if err != nil {
						return err
					}
					return filterWords(cmd.Root().Writer, globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "play",
				Usage: `play
				Interactive session: enter each guess and then its greens and yellows.
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := globalConfiguration(f)
					if err != nil {
						return err
					}
					return playInteractive(cmd.Root().Reader, cmd.Root().Writer, globalConfig)
				},
			},
			{
				Name: "sim",
				Usage: `sim --first first1 --first first2 ... [solution]...
				Play the first words against every solution, all words when none are given, and report how many
				candidates each game is left with. Fails if a game ever eliminates its own solution.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ...",
						Name:    "first",
						Aliases: []string{"f"},
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := globalConfiguration(f)
					if err != nil {
						return err
					}
					return simulate(ctx, cmd.Root().Writer, globalConfig, cmd.StringSlice("first"), cmd.Args().Slice())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
