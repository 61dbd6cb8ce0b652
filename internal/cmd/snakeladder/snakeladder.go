// Package snakeladder implements the snakeladder command.
package snakeladder

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/zeusync/snakeladder/internal/config"
	"github.com/zeusync/snakeladder/internal/core/events"
	"github.com/zeusync/snakeladder/internal/core/player"
	"github.com/zeusync/snakeladder/internal/core/setup"
	"github.com/zeusync/snakeladder/internal/core/simulate"
	"github.com/zeusync/snakeladder/internal/injector"
)

// Config holds the command configuration.
type Config struct {
	Game        config.Config
	Interactive bool
	// Simulate plays this many silent games instead of one narrated game.
	Simulate int
	Workers  int
}

// ParseConfig layers defaults, the -config file, SNL_* environment variables
// and finally explicitly set flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		path        string
		layout      string
		size        int
		difficulty  string
		players     string
		seed        uint64
		faces       int
		interactive bool
		games       int
		workers     int
	)
	def := config.Default()

	fs.StringVar(&path, "config", "", "YAML or JSON game configuration file")
	fs.StringVar(&layout, "layout", string(def.Board.Layout), "board layout (standard, random, custom)")
	fs.IntVar(&size, "size", def.Board.Size, "board side length")
	fs.StringVar(&difficulty, "difficulty", def.Board.Difficulty.String(), "random layout difficulty (easy, medium, hard)")
	fs.StringVar(&players, "players", strings.Join(def.Players, ","), "comma-separated player names in turn order")
	fs.Uint64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.IntVar(&faces, "faces", def.Dice.Faces, "number of dice faces")
	fs.BoolVar(&interactive, "interactive", false, "wait for Enter before every roll")
	fs.IntVar(&games, "simulate", 0, "play N games silently and print statistics")
	fs.IntVar(&workers, "workers", runtime.NumCPU(), "simulation worker goroutines")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := def
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		c = loaded
	}
	if err := config.ApplyEnv(&c); err != nil {
		return Config{}, err
	}

	var errs []error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			c.Board.Layout = config.Layout(strings.ToLower(layout))
		case "size":
			c.Board.Size = size
		case "difficulty":
			d, err := setup.ParseDifficulty(difficulty)
			if err != nil {
				errs = append(errs, err)
				return
			}
			c.Board.Difficulty = d
		case "players":
			c.Players = splitNames(players)
		case "seed":
			c.Seed = seed
		case "faces":
			c.Dice.Faces = faces
		}
	})
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if games < 0 {
		return Config{}, fmt.Errorf("simulate must not be negative, got %d", games)
	}
	if workers < 1 {
		workers = 1
	}

	return Config{Game: c, Interactive: interactive, Simulate: games, Workers: workers}, nil
}

// Run executes the command. Player prompts are read from in; the board,
// notices and statistics go to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if err := cfg.Game.Validate(); err != nil {
		return err
	}
	if cfg.Simulate > 0 {
		return runSimulation(ctx, cfg, out)
	}

	app, err := injector.InitializeApp(cfg.Game)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	g := app.Game
	fmt.Fprintf(out, "Seed: %d\n%s\n", app.Seed, g.Board())
	g.AddObserver(events.NewConsole(out))
	if cfg.Interactive {
		if in == nil {
			return errors.New("interactive mode needs an input")
		}
		done := make(chan struct{})
		defer close(done)
		g.SetTurnGate(enterGate(done, in, out))
	}

	if err := g.Play(ctx); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out, "Input closed, game abandoned.")
			return nil
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(out, "Interrupted, game abandoned.")
			return nil
		}
		return err
	}

	fmt.Fprintln(out, "Final positions:")
	for _, p := range g.Players() {
		fmt.Fprintf(out, "  %s: cell %d, wins %d\n", p.Name(), p.Position(), p.Wins())
	}
	return nil
}

func runSimulation(ctx context.Context, cfg Config, out io.Writer) error {
	logger, err := injector.ProvideLogger(cfg.Game)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	seed, err := injector.ProvideSeed(cfg.Game)
	if err != nil {
		return err
	}
	stats, err := simulate.Run(ctx, injector.SimulationSpec(cfg.Game, seed), cfg.Simulate, cfg.Workers, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintf(out, "Games: %d (finished %d)\n", stats.Games, stats.Finished)
	fmt.Fprintf(out, "Turns: mean %.1f, min %d, max %d\n", stats.MeanTurns(), stats.MinTurns, stats.MaxTurns)
	fmt.Fprintf(out, "Snakes hit: %d, ladders climbed: %d, forfeited rolls: %d\n", stats.SnakeHits, stats.LadderHits, stats.Forfeits)
	fmt.Fprintln(out, "Wins:")
	for _, name := range cfg.Game.Players {
		w := stats.Wins[name]
		pct := 0.0
		if stats.Finished > 0 {
			pct = 100 * float64(w) / float64(stats.Finished)
		}
		fmt.Fprintf(out, "  %s: %d (%.1f%%)\n", name, w, pct)
	}
	return nil
}

// enterGate prompts before every roll and waits for a line on in. Lines are
// read on their own goroutine so a cancelled ctx releases the prompt; that
// goroutine exits on the next read error or once done is closed.
func enterGate(done <-chan struct{}, in io.Reader, out io.Writer) func(context.Context, *player.Player) error {
	lines := make(chan error)
	go func() {
		r := bufio.NewReader(in)
		for {
			_, err := r.ReadString('\n')
			select {
			case lines <- err:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return func(ctx context.Context, p *player.Player) error {
		fmt.Fprintf(out, "%s, press Enter to roll...", p.Name())
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case err := <-lines:
			if err != nil {
				fmt.Fprintln(out)
				return err
			}
			return nil
		}
	}
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
