package decoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

// Decoder turns a live byte stream into dispatched playback and volume commands.
// It never reconnects; when the stream ends Run returns and the caller decides.
type Decoder struct {
	logger     *zap.Logger
	playback   domain.PlaybackControl
	volume     domain.SystemVolume
	seekOffset time.Duration
}

// NewDecoder creates a command decoder bound to the playback and volume ports
func NewDecoder(
	logger *zap.Logger,
	cfg domain.Config,
	playback domain.PlaybackControl,
	volume domain.SystemVolume,
) *Decoder {
	return &Decoder{
		logger:     logger,
		playback:   playback,
		volume:     volume,
		seekOffset: cfg.GetSeekOffset(),
	}
}

// Run reads chunks from r and dispatches them in order until the stream ends.
// The returned error wraps domain.ErrStreamEnded, or is ctx.Err() when the
// session was stopped.
func (d *Decoder) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, ReadBufferSize)

	for {
		n, err := r.Read(buf)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if n > 0 {
			d.HandleChunk(ctx, buf[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: peer closed the connection", domain.ErrStreamEnded)
			}
			return fmt.Errorf("%w: %w", domain.ErrStreamEnded, err)
		}

		if n == 0 {
			return fmt.Errorf("%w: empty read", domain.ErrStreamEnded)
		}
	}
}

// HandleChunk decodes one chunk and dispatches the result.
// Failures are logged and never end the session.
func (d *Decoder) HandleChunk(ctx context.Context, chunk []byte) {
	cmd, err := Parse(chunk)
	if err != nil {
		d.logger.Warn("Ignoring malformed command",
			zap.ByteString("chunk", chunk),
			zap.Error(err))
		return
	}

	if cmd.Kind == domain.CommandUnknown {
		d.logger.Debug("Ignoring unrecognized chunk", zap.ByteString("chunk", chunk))
		return
	}

	if err := d.Dispatch(ctx, cmd); err != nil {
		d.logger.Error("Failed to dispatch command",
			zap.Stringer("command", cmd),
			zap.Error(err))
	}
}

// Dispatch executes a command against the ports.
// The active session is refreshed for every command. Playback commands are
// dropped without error if there is none; volume commands never use it.
func (d *Decoder) Dispatch(ctx context.Context, cmd domain.Command) error {
	session, err := d.playback.ActiveSession(ctx)

	if cmd.Kind == domain.CommandSetVolume {
		if err != nil {
			d.logger.Warn("Failed to refresh media session", zap.Error(err))
		}
		return d.setVolume(ctx, cmd.Percent)
	}

	if err != nil {
		return fmt.Errorf("failed to resolve active session: %w", err)
	}
	if session == nil {
		d.logger.Debug("No active media session, dropping command", zap.Stringer("command", cmd))
		return nil
	}

	state, err := d.playback.PlaybackState(ctx, *session)
	if err != nil {
		return fmt.Errorf("failed to query playback state of %s: %w", session.BusName, err)
	}
	if state == nil {
		d.logger.Debug("Session reports no playback state, dropping command",
			zap.String("session", session.BusName),
			zap.Stringer("command", cmd))
		return nil
	}

	d.logger.Info("Dispatching command",
		zap.Stringer("command", cmd),
		zap.String("session", session.BusName))

	switch cmd.Kind {
	case domain.CommandTogglePlayPause:
		if state.IsPlaying {
			return d.playback.Pause(ctx, *session)
		}
		return d.playback.Play(ctx, *session)
	case domain.CommandSeekForward:
		if !state.HasPosition {
			d.logger.Debug("Session reports no position, dropping seek",
				zap.String("session", session.BusName))
			return nil
		}
		return d.playback.SeekTo(ctx, *session, state.PositionMs+d.seekOffset.Milliseconds())
	case domain.CommandNext:
		return d.playback.SkipNext(ctx, *session)
	case domain.CommandPrevious:
		return d.playback.SkipPrevious(ctx, *session)
	}

	return fmt.Errorf("unsupported command %s", cmd)
}

func (d *Decoder) setVolume(ctx context.Context, percent int) error {
	maxLevel, err := d.volume.MaxVolumeLevel(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max volume: %w", err)
	}

	level := int(math.Round(float64(maxLevel) * float64(percent) / 100))

	d.logger.Info("Setting volume",
		zap.Int("percent", percent),
		zap.Int("level", level),
		zap.Int("max", maxLevel))

	return d.volume.SetVolumeLevel(ctx, level)
}
