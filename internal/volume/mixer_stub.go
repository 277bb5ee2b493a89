//go:build !linux
// +build !linux

package volume

import (
	"context"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

// Mixer is a placeholder for unsupported platforms
type Mixer struct {
	logger *zap.Logger
}

// NewMixer creates a stub mixer for unsupported platforms
func NewMixer(logger *zap.Logger, name string) (*Mixer, error) {
	logger.Warn("Volume control is not implemented for this platform")
	return &Mixer{logger: logger}, nil
}

// MaxVolumeLevel always fails on this platform
func (m *Mixer) MaxVolumeLevel(ctx context.Context) (int, error) {
	return 0, domain.ErrNoVolumeBackend
}

// SetVolumeLevel always fails on this platform
func (m *Mixer) SetVolumeLevel(ctx context.Context, level int) error {
	return domain.ErrNoVolumeBackend
}
