//go:build !linux
// +build !linux

package mpris

import (
	"context"
	"fmt"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

var errUnsupported = fmt.Errorf("MPRIS playback control is only supported on Linux systems")

// Controller stub for non-Linux platforms
type Controller struct {
	logger *zap.Logger
}

// NewController creates a stub controller that reports no active session
func NewController(logger *zap.Logger) (*Controller, error) {
	logger.Warn("MPRIS is not available on this platform, playback commands will be dropped")
	return &Controller{logger: logger}, nil
}

// Close is a no-op on non-Linux platforms
func (c *Controller) Close() error {
	return nil
}

// ActiveSession never finds a session
func (c *Controller) ActiveSession(ctx context.Context) (*domain.Session, error) {
	return nil, nil
}

func (c *Controller) PlaybackState(ctx context.Context, s domain.Session) (*domain.PlaybackState, error) {
	return nil, errUnsupported
}

func (c *Controller) Play(ctx context.Context, s domain.Session) error         { return errUnsupported }
func (c *Controller) Pause(ctx context.Context, s domain.Session) error        { return errUnsupported }
func (c *Controller) SkipNext(ctx context.Context, s domain.Session) error     { return errUnsupported }
func (c *Controller) SkipPrevious(ctx context.Context, s domain.Session) error { return errUnsupported }

func (c *Controller) SeekTo(ctx context.Context, s domain.Session, positionMs int64) error {
	return errUnsupported
}
