package snakeladder

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/snakeladder/internal/config"
	"github.com/zeusync/snakeladder/internal/core/setup"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("snakeladder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return ParseConfig(fs, args)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg.Game)
	assert.False(t, cfg.Interactive)
	assert.Zero(t, cfg.Simulate)
	assert.Positive(t, cfg.Workers)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t,
		"-layout", "random",
		"-difficulty", "hard",
		"-players", "ana, bo,,cy",
		"-seed", "12",
		"-faces", "8",
		"-simulate", "50",
		"-workers", "0",
	)
	require.NoError(t, err)
	assert.Equal(t, config.LayoutRandom, cfg.Game.Board.Layout)
	assert.Equal(t, setup.Hard, cfg.Game.Board.Difficulty)
	assert.Equal(t, []string{"ana", "bo", "cy"}, cfg.Game.Players)
	assert.EqualValues(t, 12, cfg.Game.Seed)
	assert.Equal(t, 8, cfg.Game.Dice.Faces)
	assert.Equal(t, 50, cfg.Simulate)
	assert.Equal(t, 1, cfg.Workers)
}

func TestParseConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	doc := "board:\n  size: 8\n  layout: random\n  difficulty: easy\nplayers: [file1, file2]\nseed: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	t.Setenv("SNL_SEED", "6")
	t.Setenv("SNL_PLAYERS", "env1,env2,env3")

	cfg, err := parse(t, "-config", path, "-seed", "7")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.Board.Size, "file overrides defaults")
	assert.Equal(t, setup.Easy, cfg.Game.Board.Difficulty)
	assert.Equal(t, []string{"env1", "env2", "env3"}, cfg.Game.Players, "env overrides file")
	assert.EqualValues(t, 7, cfg.Game.Seed, "flags override env")
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parse(t, "-difficulty", "brutal")
	assert.Error(t, err)

	_, err = parse(t, "-simulate", "-1")
	assert.Error(t, err)

	_, err = parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = parse(t, "-nope")
	assert.Error(t, err)
}

func quiet(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := parse(t, args...)
	require.NoError(t, err)
	cfg.Game.Log.Level = "error"
	return cfg
}

func TestRunPlaysOneGame(t *testing.T) {
	cfg := quiet(t, "-seed", "21", "-players", "ana,bo")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, nil, &out))
	text := out.String()
	assert.Contains(t, text, "Seed: 21\n")
	assert.Contains(t, text, "Total cells: 100")
	assert.Contains(t, text, "[GAME NOTICE] Game initiated.\n")
	assert.Contains(t, text, "[GAME NOTICE] Game concluded. Winner: ")
	assert.Contains(t, text, "Final positions:")
}

func TestRunInteractiveStopsOnClosedInput(t *testing.T) {
	cfg := quiet(t, "-seed", "3", "-interactive", "-players", "ana,bo")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, strings.NewReader("\n\n"), &out))
	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "press Enter to roll"))
	assert.Contains(t, text, "ana, press Enter to roll...")
	assert.Contains(t, text, "Input closed, game abandoned.")
}

// promptWatcher records output and signals the first roll prompt.
type promptWatcher struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	once     sync.Once
	prompted chan struct{}
}

func (w *promptWatcher) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), "press Enter to roll") {
		w.once.Do(func() { close(w.prompted) })
	}
	return n, err
}

func (w *promptWatcher) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestRunInteractiveStopsOnCancelAtPrompt(t *testing.T) {
	cfg := quiet(t, "-seed", "1", "-interactive", "-players", "ana,bo")
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &promptWatcher{prompted: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, pr, out) }()

	select {
	case <-out.prompted:
	case <-time.After(5 * time.Second):
		t.Fatal("no roll prompt")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run still waiting for input after cancel")
	}
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "press Enter to roll"))
	assert.Contains(t, text, "Interrupted, game abandoned.")
	assert.NotContains(t, text, "completed a move")
}

func TestRunSimulation(t *testing.T) {
	cfg := quiet(t, "-seed", "4", "-simulate", "20", "-workers", "3", "-players", "ana,bo")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, nil, &out))
	text := out.String()
	assert.Contains(t, text, "Games: 20 (finished 20)")
	assert.Contains(t, text, "  ana: ")
	assert.Contains(t, text, "  bo: ")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := quiet(t, "-players", "solo")
	err := Run(context.Background(), cfg, nil, io.Discard)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
