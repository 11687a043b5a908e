// Package game runs a match in the terminal: it polls key events, feeds them
// to the turn engine one at a time and redraws after each.
package game

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/gamedata"
	"github.com/samdwyer/asciiwar/internal/match"
	"github.com/samdwyer/asciiwar/internal/ui"
)

// Game holds the screen and the match being played on it.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *match.Engine
	keys     *KeyMap
	logger   *log.Logger
	running  bool
}

// New opens the terminal and creates a new game.
func New(ctx context.Context, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an already initialized screen.
func NewWithScreen(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	def, err := LoadMatchDef(cfg.MatchFile)
	if err != nil {
		return nil, err
	}
	keys, err := NewKeyMap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	engine, err := match.NewMatch(ctx, def, match.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, def.Palette),
		engine:   engine,
		keys:     keys,
		logger:   logger,
		running:  true,
	}, nil
}

// LoadMatchDef returns the match definition at path, or the built-in one when path is empty.
func LoadMatchDef(path string) (*gamedata.MatchDef, error) {
	if path == "" {
		return gamedata.LoadMatch()
	}
	return gamedata.LoadMatchFile(path)
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("game loop started", "match", g.engine.ID())

	// PollEvent blocks, so cancellation has to be posted into the event queue.
	screen := g.screen
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			screen.Interrupt()
		case <-done:
		}
	}()
	defer func() {
		close(done)
		wg.Wait()
		g.Close()
	}()

	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.renderer.Render(g.engine.Snapshot())

		// Blocks until the next event
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.logger.Info("game loop stopped", "turns", g.engine.Turn())
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// Screen finalized
		g.running = false
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// Run rechecks ctx on the next iteration.
	}
}

// handleKey translates a key and hands it to the engine.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	in, quit := g.keys.Lookup(key, r)
	if quit {
		g.running = false
		return
	}
	g.engine.Handle(ctx, in)
}

// Engine returns the match being played.
func (g *Game) Engine() *match.Engine {
	return g.engine
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
