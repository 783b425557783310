package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/barrenland/internal/config"
	"github.com/samdwyer/barrenland/internal/entity"
	"github.com/samdwyer/barrenland/internal/telemetry"
	"github.com/samdwyer/barrenland/internal/world"
)

// Fixed replies of the command surface.
const (
	MsgUnknownCommand = "I don't understand that command."
	MsgGoodbye        = "Goodbye."
	MsgSessionOver    = "The session has ended."
	MsgBuildUsage     = `Build what? Try "build <type>".`
)

// Response is the reply to one line of input.
type Response struct {
	Message string
	Quit    bool // Set once the session has ended
}

// Session holds one world and its single player. Handle and Move are
// serialised, so each action is atomic relative to the world's maps.
type Session struct {
	ID string

	mu      sync.Mutex
	world   *world.World
	player  *entity.Player
	state   State
	logger  *slog.Logger
	metrics *telemetry.Metrics
	extra   []world.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The world logs through it too.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMetrics records session and world counters on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithWorldOptions passes extra options to world.New, e.g. a custom tile registry.
func WithWorldOptions(opts ...world.Option) Option {
	return func(s *Session) { s.extra = append(s.extra, opts...) }
}

// New creates a session: a fresh world sized by cfg and a player at its center.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Session{
		ID:    uuid.NewString(),
		state: StateExploring,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = telemetry.DiscardLogger()
	}
	s.logger = s.logger.With("session", s.ID)

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.init")
	defer span.End()

	worldOpts := []world.Option{world.WithSeed(cfg.Seed), world.WithLogger(s.logger)}
	if s.metrics != nil {
		worldOpts = append(worldOpts, world.WithMetrics(s.metrics))
	}
	s.world = world.New(cfg.WorldSize, append(worldOpts, s.extra...)...)
	s.player = entity.NewPlayerWithRadius(ctx, s.world, cfg.Radius)

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("world.size", cfg.WorldSize),
		attribute.Int("player.start_x", s.player.Location.X),
		attribute.Int("player.start_y", s.player.Location.Y),
	)
	s.logger.Info("session started",
		"size", cfg.WorldSize, "seed", cfg.Seed, "start", s.player.Location.String())
	return s, nil
}

// Handle processes one line of text input.
func (s *Session) Handle(ctx context.Context, line string) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := telemetry.Tracer("game").Start(ctx, "session.handle")
	defer span.End()

	input := strings.ToLower(strings.TrimSpace(line))
	verb, arg, _ := strings.Cut(input, " ")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("command.verb", verb),
	)

	if s.state == StateEnded {
		return Response{Message: MsgSessionOver, Quit: true}
	}

	if dir, ok := entity.ParseDirection(input); ok {
		return s.move(ctx, dir)
	}

	if input == "quit" {
		s.state = StateEnded
		s.logger.Info("session ended")
		return Response{Message: MsgGoodbye, Quit: true}
	}

	switch verb {
	case "look":
		return Response{Message: s.player.DescribeLocation(s.world)}
	case "build":
		buildingType := strings.TrimSpace(arg)
		if buildingType == "" {
			s.count(telemetry.OutcomeRejected)
			return Response{Message: MsgBuildUsage}
		}
		msg, built := s.player.Build(s.world, buildingType)
		if built {
			s.count(telemetry.OutcomeOK)
		} else {
			s.count(telemetry.OutcomeRejected)
		}
		return Response{Message: msg}
	}

	return s.execute(input)
}

// Move handles a directional key press.
func (s *Session) Move(ctx context.Context, dir entity.Direction) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateEnded {
		return Response{Message: MsgSessionOver, Quit: true}
	}
	return s.move(ctx, dir)
}

func (s *Session) move(ctx context.Context, dir entity.Direction) Response {
	from := s.player.Location
	msg := s.player.Move(ctx, dir, s.world)

	outcome := telemetry.OutcomeOK
	if s.player.Location == from {
		outcome = telemetry.OutcomeRejected
	}
	if s.metrics != nil {
		s.metrics.Moves.WithLabelValues(outcome).Inc()
	}
	s.logger.Debug("move", "direction", dir.String(), "outcome", outcome, "at", s.player.Location.String())
	return Response{Message: msg}
}

// execute forwards a tile command to the player. Words no tile kind knows get
// the generic "don't understand" reply rather than "can't be used here".
func (s *Session) execute(command string) Response {
	if command == "" || !world.KnownCommand(command) {
		s.count(telemetry.OutcomeUnknown)
		return Response{Message: MsgUnknownCommand}
	}

	b, hasBuilding := s.world.Building(s.player.Location)
	levelBefore := 0
	if hasBuilding {
		levelBefore = b.Level
	}

	msg := s.player.ExecuteCommand(command, s.world)
	if msg == entity.MsgCantUseHere {
		s.count(telemetry.OutcomeRejected)
		return Response{Message: msg}
	}
	s.count(telemetry.OutcomeOK)

	if hasBuilding && b.Level > levelBefore {
		if s.metrics != nil {
			s.metrics.LevelUps.WithLabelValues(b.Type).Inc()
		}
		s.logger.Info("building leveled up", "type", b.Type, "level", b.Level, "at", s.player.Location.String())
	}
	return Response{Message: msg}
}

func (s *Session) count(outcome string) {
	if s.metrics != nil {
		s.metrics.Commands.WithLabelValues(outcome).Inc()
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the session still accepts input.
func (s *Session) Running() bool {
	return s.State() != StateEnded
}

// Location returns the player's coordinate.
func (s *Session) Location() world.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Location
}

// World returns the session's world. Callers must not mutate it while the
// session is handling input.
func (s *Session) World() *world.World {
	return s.world
}
