//go:build linux
// +build linux

package mpris

import (
	"context"
	"fmt"
	"strings"

	"github.com/genricoloni/btremote/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	playerPrefix    = "org.mpris.MediaPlayer2."
	playerPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Controller drives MPRIS media players on the session bus
type Controller struct {
	logger *zap.Logger
	conn   DBusClient // Interface for testability
}

// NewController connects to the session bus and returns a playback controller
func NewController(logger *zap.Logger) (*Controller, error) {
	conn, err := NewStdDBusClient()
	if err != nil {
		logger.Error("Failed to connect to session bus", zap.Error(err))
		return nil, fmt.Errorf("session bus connection failed: %w", err)
	}
	return &Controller{logger: logger, conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *Controller) Close() error {
	return c.conn.Close()
}

// ActiveSession returns the first MPRIS player on the bus, or nil if there is none
func (c *Controller) ActiveSession(ctx context.Context) (*domain.Session, error) {
	names, err := c.conn.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bus names: %w", err)
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, playerPrefix) {
			players = append(players, name)
		}
	}

	c.logger.Info("Media sessions refreshed", zap.Int("count", len(players)))

	if len(players) == 0 {
		return nil, nil
	}
	return &domain.Session{BusName: players[0]}, nil
}

// PlaybackState reads PlaybackStatus and Position from the player.
// A player that exposes no usable status yields nil.
func (c *Controller) PlaybackState(ctx context.Context, s domain.Session) (*domain.PlaybackState, error) {
	statusVariant, err := c.conn.GetProperty(ctx, s.BusName, playerPath, playerInterface+".PlaybackStatus")
	if err != nil {
		return nil, fmt.Errorf("failed to get playback status: %w", err)
	}

	// SAFE CAST: some players return unexpected types when idle
	status, ok := statusVariant.Value().(string)
	if !ok {
		c.logger.Debug("PlaybackStatus is not a string, skipping", zap.String("player", s.BusName))
		return nil, nil
	}

	state := &domain.PlaybackState{
		IsPlaying: domain.PlayerStatus(status) == domain.StatusPlaying,
	}

	// Position is optional in practice; without it HasPosition stays false
	positionVariant, err := c.conn.GetProperty(ctx, s.BusName, playerPath, playerInterface+".Position")
	if err != nil {
		c.logger.Debug("Failed to get position", zap.String("player", s.BusName), zap.Error(err))
		return state, nil
	}
	us, ok := positionVariant.Value().(int64)
	if !ok {
		c.logger.Debug("Position is not an int64, skipping", zap.String("player", s.BusName))
		return state, nil
	}
	state.PositionMs = us / 1000
	state.HasPosition = true

	return state, nil
}

// Play resumes playback
func (c *Controller) Play(ctx context.Context, s domain.Session) error {
	return c.call(ctx, s, "Play")
}

// Pause pauses playback
func (c *Controller) Pause(ctx context.Context, s domain.Session) error {
	return c.call(ctx, s, "Pause")
}

// SkipNext skips to the next track
func (c *Controller) SkipNext(ctx context.Context, s domain.Session) error {
	return c.call(ctx, s, "Next")
}

// SkipPrevious skips to the previous track
func (c *Controller) SkipPrevious(ctx context.Context, s domain.Session) error {
	return c.call(ctx, s, "Previous")
}

// SeekTo sets the absolute position of the current track.
// MPRIS SetPosition needs the track id and takes microseconds.
func (c *Controller) SeekTo(ctx context.Context, s domain.Session, positionMs int64) error {
	trackID, err := c.trackID(ctx, s)
	if err != nil {
		return err
	}
	return c.call(ctx, s, "SetPosition", trackID, positionMs*1000)
}

func (c *Controller) trackID(ctx context.Context, s domain.Session) (dbus.ObjectPath, error) {
	variant, err := c.conn.GetProperty(ctx, s.BusName, playerPath, playerInterface+".Metadata")
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		return "", fmt.Errorf("player %s returned invalid metadata", s.BusName)
	}

	trackVar, ok := metadata["mpris:trackid"]
	if !ok {
		return "", fmt.Errorf("player %s reports no track id", s.BusName)
	}

	// Some players publish the id as a plain string
	switch id := trackVar.Value().(type) {
	case dbus.ObjectPath:
		return id, nil
	case string:
		return dbus.ObjectPath(id), nil
	default:
		return "", fmt.Errorf("player %s track id has type %T", s.BusName, id)
	}
}

func (c *Controller) call(ctx context.Context, s domain.Session, method string, args ...any) error {
	if err := c.conn.Call(ctx, s.BusName, playerPath, playerInterface+"."+method, args...); err != nil {
		return fmt.Errorf("%s on %s failed: %w", method, s.BusName, err)
	}
	c.logger.Debug("MPRIS call succeeded",
		zap.String("player", s.BusName),
		zap.String("method", method))
	return nil
}
