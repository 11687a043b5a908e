package match

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiwar/internal/entity"
	"github.com/samdwyer/asciiwar/internal/gamedata"
	"github.com/samdwyer/asciiwar/internal/grid"
	"github.com/samdwyer/asciiwar/internal/telemetry"
	"github.com/samdwyer/asciiwar/internal/world"
)

// Engine owns the whole match state. All mutation of the map and the
// characters goes through Handle, one input at a time.
type Engine struct {
	id         uuid.UUID
	name       string
	board      *world.Map
	characters []*entity.Character
	active     int
	phase      Phase
	turn       int
	logger     *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for input and transition events.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithName sets the match display name.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// NewEngine seats the roster on the board and starts the first Move phase
// for roster[0]. Every living character's starting tile is marked occupied.
func NewEngine(board *world.Map, roster []*entity.Character, opts ...Option) (*Engine, error) {
	if board == nil {
		return nil, errors.New("engine needs a map")
	}
	if len(roster) != gamedata.RosterSize {
		return nil, fmt.Errorf("roster has %d characters, want %d", len(roster), gamedata.RosterSize)
	}

	e := &Engine{
		id:         uuid.New(),
		board:      board,
		characters: roster,
		phase:      PhaseMove,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := checkSeats(board, roster); err != nil {
		return nil, err
	}
	for _, c := range roster {
		if !c.IsAlive() {
			continue
		}
		if err := board.Place(c.Position, c.ID); err != nil {
			return nil, fmt.Errorf("seat %s: %w", c.Name, err)
		}
	}
	roster[0].ResetMovement()

	return e, nil
}

// checkSeats verifies the whole roster can be seated before the board is touched:
// ids unique and non-negative, living characters on distinct passable tiles.
func checkSeats(board *world.Map, roster []*entity.Character) error {
	ids := make(map[int]bool, len(roster))
	seats := make(map[grid.Position]bool, len(roster))
	for i, c := range roster {
		if c == nil {
			return fmt.Errorf("roster entry %d is nil", i)
		}
		if c.ID < 0 {
			return fmt.Errorf("character %s has negative id %d", c.Name, c.ID)
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate character id %d", c.ID)
		}
		ids[c.ID] = true

		if !c.IsAlive() {
			continue
		}
		if _, err := board.TileAt(c.Position); err != nil {
			return fmt.Errorf("seat %s: %w", c.Name, err)
		}
		if seats[c.Position] || !board.IsPassable(c.Position) {
			return fmt.Errorf("seat %s at %s: %w", c.Name, c.Position, world.ErrInvalidMove)
		}
		seats[c.Position] = true
	}
	return nil
}

// NewMatch builds the board and roster from a match definition.
func NewMatch(ctx context.Context, def *gamedata.MatchDef, opts ...Option) (*Engine, error) {
	tracer := telemetry.Tracer("match")
	ctx, span := tracer.Start(ctx, "match.start")
	defer span.End()

	if err := def.Validate(); err != nil {
		return nil, err
	}
	terrain, err := def.Terrain()
	if err != nil {
		return nil, err
	}

	board := world.NewMap()
	if err := board.Build(ctx, terrain); err != nil {
		return nil, err
	}

	roster := make([]*entity.Character, 0, len(def.Characters))
	for i := range def.Characters {
		c, err := entity.NewCharacterFromDef(&def.Characters[i])
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
	}

	e, err := NewEngine(board, roster, append([]Option{WithName(def.Name)}, opts...)...)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("match.id", e.id.String()),
		attribute.String("match.name", e.name),
		attribute.Int("match.roster", len(roster)),
	)
	e.logger.Info("match started", "id", e.id, "name", e.name)
	return e, nil
}

// ID returns the match identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Turn returns the number of completed turns.
func (e *Engine) Turn() int { return e.turn }

// ActiveIndex returns the roster index of the acting character.
func (e *Engine) ActiveIndex() int { return e.active }

// Active returns a read-only view of the acting character.
func (e *Engine) Active() CharacterView { return e.view(e.active) }

func (e *Engine) current() *entity.Character { return e.characters[e.active] }

// Handle processes a single input event to completion.
func (e *Engine) Handle(ctx context.Context, in Input) {
	c := e.current()
	e.logger.Debug("input", "input", in, "character", c.ID, "pos", c.Position, "phase", e.phase)

	// The exhausted budget is only noticed on the next event, which is then
	// handled as an Attack phase input.
	if e.phase == PhaseMove && c.MovementPoints() == 0 {
		e.enterAttack(c, "budget spent")
	}

	switch e.phase {
	case PhaseMove:
		if d, ok := in.Direction(); ok {
			e.step(c, d)
		} else if in == InputConfirm {
			e.enterAttack(c, "confirm")
		}
	case PhaseAttack:
		if d, ok := in.Direction(); ok {
			c.MoveSelector(d)
		} else if in == InputConfirm {
			e.endTurn(ctx, c)
		}
	}
}

// Run feeds every input from src into the engine until src is exhausted or ctx is done.
func (e *Engine) Run(ctx context.Context, src Source) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		in, ok := src.Next()
		if !ok {
			return nil
		}
		e.Handle(ctx, in)
	}
}

// step tries to move c one cell. A blocked or off-grid step is dropped.
func (e *Engine) step(c *entity.Character, d grid.Direction) {
	defer c.ApplyMove(d)

	next, ok := grid.Neighbor(c.Position, d)
	if !ok {
		e.logger.Debug("move rejected", "character", c.ID, "from", c.Position, "dir", d, "reason", "edge")
		return
	}
	if !e.board.IsPassable(next) {
		e.logger.Debug("move rejected", "character", c.ID, "to", next, "reason", "blocked")
		return
	}
	if err := e.board.MoveOccupant(c.Position, next, c.ID); err != nil {
		e.logger.Debug("move rejected", "character", c.ID, "to", next, "err", err)
		return
	}
	c.SetPosition(next)
	c.SpendMovementPoint()
}

func (e *Engine) enterAttack(c *entity.Character, reason string) {
	e.phase = PhaseAttack
	c.BeginTargeting()
	e.logger.Debug("attack phase", "character", c.ID, "selector", c.Selector, "reason", reason)
}

func (e *Engine) endTurn(ctx context.Context, c *entity.Character) {
	tracer := telemetry.Tracer("match")
	_, span := tracer.Start(ctx, "turn.end")
	span.SetAttributes(
		attribute.String("match.id", e.id.String()),
		attribute.Int("turn", e.turn),
		attribute.Int("character", c.ID),
		attribute.String("selector", c.Selector.String()),
		attribute.Bool("selector.on_grid", c.Selector.InBounds()),
	)
	span.End()

	e.turn++
	e.phase = PhaseMove
	e.active = (e.active + 1) % len(e.characters)
	e.logger.Debug("turn ended", "turn", e.turn, "target", c.Selector, "next", e.current().ID)
}
