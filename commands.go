package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"statesearch/coins"
	"statesearch/config"
	"statesearch/engine"
	"statesearch/game"
	"statesearch/jugs"
	"statesearch/nim"
	"statesearch/report"
	"statesearch/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cli struct {
	configPath string
	logLevel   string
	config     config.Config
}

type solveFlags struct {
	capacities    []int
	contents      []int
	goal          []int
	maxExpansions int
	timeout       time.Duration
	chart         string
	records       string
}

type playFlags struct {
	objects  int
	limit    int
	opponent string
	seed     uint64
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:          "statesearch",
		Short:        "Solve puzzles by breadth-first search and play two-player board games",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "statesearch.yaml", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(c.newSolveCmd(), c.newPlayCmd())
	return rootCmd
}

func (c *cli) setup(logOut io.Writer) error {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.Kitchen})

	c.config, err = config.Load(c.configPath)
	if err != nil {
		return err
	}
	log.Debug().Msgf("loaded configuration from %s", c.configPath)
	return nil
}

func (c *cli) newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest solution to a puzzle",
	}

	flags := &solveFlags{}
	jugsCmd := &cobra.Command{
		Use:   "jugs",
		Short: "Measure water by pouring between jugs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.solveJugs(cmd, flags)
		},
	}
	jugsCmd.Flags().IntSliceVar(&flags.capacities, "capacities", nil, "Capacity of each jug")
	jugsCmd.Flags().IntSliceVar(&flags.contents, "contents", nil, "Initial water in each jug")
	jugsCmd.Flags().IntSliceVar(&flags.goal, "goal", nil, "Water wanted in each jug")
	jugsCmd.Flags().IntVar(&flags.maxExpansions, "max-expansions", 0, "Give up after expanding this many states (0 for no limit)")
	jugsCmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Give up after this long (0 for no limit)")
	jugsCmd.Flags().StringVar(&flags.chart, "chart", "", "Write an HTML chart of states discovered per depth to this file")
	jugsCmd.Flags().StringVar(&flags.records, "records", "", "Write search statistics as CSV under this directory")

	solveCmd.AddCommand(jugsCmd)
	return solveCmd
}

func (c *cli) solveJugs(cmd *cobra.Command, flags *solveFlags) error {
	cfg := c.config
	changed := cmd.Flags().Changed
	if changed("capacities") {
		cfg.Jugs.Capacities = flags.capacities
	}
	if changed("contents") {
		cfg.Jugs.Contents = flags.contents
	}
	if changed("goal") {
		cfg.Jugs.Goal = flags.goal
	}
	if changed("max-expansions") {
		cfg.Search.MaxExpansions = flags.maxExpansions
	}
	if changed("timeout") {
		cfg.Search.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	initial, err := cfg.Jugs.Instance()
	if err != nil {
		return err
	}

	options := append(cfg.Search.Options(), searcher.WithMetrics())
	solution, searchErr := searcher.Solve[*jugs.State, jugs.Move](initial, options...)
	metric := solution.Metrics
	log.Info().Msgf("search %s in %s: %d expanded, %d generated, %d duplicates",
		metric.Outcome, metric.Duration, metric.Expanded, metric.Generated, metric.Duplicates)

	out := cmd.OutOrStdout()
	if err := report.PrintSolution(out, initial, solution.Moves, searchErr); err != nil {
		return err
	}

	if flags.chart != "" {
		if err := writeChart(flags.chart, initial.String(), metric); err != nil {
			return err
		}
		log.Info().Msgf("wrote chart to %s", flags.chart)
	}
	if flags.records != "" {
		w, err := report.NewWriter(flags.records)
		if err != nil {
			return err
		}
		if err := w.WriteSearchRecords([]report.SearchRecord{{Instance: initial.String(), SearchMetric: metric}}); err != nil {
			return err
		}
		if err := w.WriteLevels(metric); err != nil {
			return err
		}
		log.Info().Msgf("wrote search records to %s", w.Dir())
	}

	if searchErr != nil && !errors.Is(searchErr, searcher.ErrNotSolvable) {
		return searchErr
	}
	return nil
}

func writeChart(path, title string, metric searcher.SearchMetric) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	return report.RenderLevels(f, title, metric)
}

func (c *cli) newPlayCmd() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a two-player game against a person or the computer",
	}

	flags := &playFlags{}
	addOpponentFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&flags.opponent, "opponent", "", "Second player: human or random")
		cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed of the random opponent")
	}

	nimCmd := &cobra.Command{
		Use:   "nim",
		Short: "Take turns removing objects; whoever takes the last one wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.playNim(cmd, flags)
		},
	}
	nimCmd.Flags().IntVar(&flags.objects, "objects", 0, "Objects in the pile")
	nimCmd.Flags().IntVar(&flags.limit, "limit", 0, "Most objects removed per turn")
	addOpponentFlags(nimCmd)

	coinsCmd := &cobra.Command{
		Use:   "coins",
		Short: "Slide corner coins one square at a time; first to the centre wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.playCoins(cmd, flags)
		},
	}
	addOpponentFlags(coinsCmd)

	playCmd.AddCommand(nimCmd, coinsCmd)
	return playCmd
}

func (c *cli) gameConfig(cmd *cobra.Command, flags *playFlags) (config.Config, error) {
	cfg := c.config
	changed := cmd.Flags().Changed
	if changed("objects") {
		cfg.Nim.Objects = flags.objects
	}
	if changed("limit") {
		cfg.Nim.Limit = flags.limit
	}
	if changed("opponent") {
		cfg.Game.Opponent = flags.opponent
	}
	if changed("seed") {
		cfg.Game.Seed = flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func (c *cli) playNim(cmd *cobra.Command, flags *playFlags) error {
	cfg, err := c.gameConfig(cmd, flags)
	if err != nil {
		return err
	}
	initial, err := cfg.Nim.Instance()
	if err != nil {
		return err
	}

	console := engine.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	human := engine.NewHumanAgent[nim.State, int](console, nim.ParseMove)
	agents := []engine.Agent[nim.State, int]{human, human}
	if cfg.Game.Opponent == "random" {
		agents[1] = engine.NewRandomAgent[nim.State, int](cfg.Game.Seed)
	}

	_, err = engine.LocalEngine(initial, agents, cmd.OutOrStdout()).Run()
	return err
}

func (c *cli) playCoins(cmd *cobra.Command, flags *playFlags) error {
	cfg, err := c.gameConfig(cmd, flags)
	if err != nil {
		return err
	}

	console := engine.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	human := engine.NewTwoPhaseHumanAgent[coins.State, coins.Position](console, coins.ParsePosition)
	agents := []engine.Agent[coins.State, game.TwoPhaseMove[coins.Position]]{human, human}
	if cfg.Game.Opponent == "random" {
		agents[1] = engine.NewRandomAgent[coins.State, coins.Move](cfg.Game.Seed)
	}

	_, err = engine.LocalEngine(coins.New(), agents, cmd.OutOrStdout()).Run()
	return err
}
