//go:build linux
// +build linux

package volume

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

// Backend is a mixer command able to set the default output level
type Backend struct {
	Name     string
	Binary   string
	Args     []string // %d is replaced with the level
	MaxLevel int
}

// Ordered list of mixer backends to try (highest priority first)
var backends = []Backend{
	// PipeWire
	{Name: "wpctl", Binary: "wpctl", Args: []string{"set-volume", "@DEFAULT_AUDIO_SINK@", "%d%"}, MaxLevel: 100},
	// PulseAudio, raw volume where 65536 is 100%
	{Name: "pactl", Binary: "pactl", Args: []string{"set-sink-volume", "@DEFAULT_SINK@", "%d"}, MaxLevel: 65536},
	// ALSA
	{Name: "amixer", Binary: "amixer", Args: []string{"-q", "sset", "Master", "%d%"}, MaxLevel: 100},
}

type runFunc func(ctx context.Context, binary string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, binary, args...).CombinedOutput()
}

// Mixer sets the system output volume through a mixer command
type Mixer struct {
	logger  *zap.Logger
	backend Backend
	run     runFunc
}

// NewMixer picks the configured backend, or the first one installed when
// name is "auto". With "auto" and nothing installed the mixer is still
// returned and every volume command fails with ErrNoVolumeBackend.
func NewMixer(logger *zap.Logger, name string) (*Mixer, error) {
	return newMixer(logger, name, exec.LookPath, runCommand)
}

func newMixer(logger *zap.Logger, name string, lookPath func(string) (string, error), run runFunc) (*Mixer, error) {
	backend, err := detectBackend(name, lookPath)
	if err != nil {
		return nil, err
	}

	if backend.Binary == "" {
		logger.Warn("No mixer command found, volume commands will be ignored")
	} else {
		logger.Info("Mixer detected",
			zap.String("name", backend.Name),
			zap.Int("maxLevel", backend.MaxLevel))
	}

	return &Mixer{logger: logger, backend: backend, run: run}, nil
}

func detectBackend(name string, lookPath func(string) (string, error)) (Backend, error) {
	if name == "" || name == "auto" {
		for _, b := range backends {
			if _, err := lookPath(b.Binary); err == nil {
				return b, nil
			}
		}
		return Backend{}, nil
	}

	for _, b := range backends {
		if b.Name != name {
			continue
		}
		if _, err := lookPath(b.Binary); err != nil {
			return Backend{}, fmt.Errorf("%w: %s is not installed", domain.ErrNoVolumeBackend, b.Binary)
		}
		return b, nil
	}
	return Backend{}, fmt.Errorf("%w: unknown backend %q", domain.ErrNoVolumeBackend, name)
}

// MaxVolumeLevel returns the backend's full-scale level
func (m *Mixer) MaxVolumeLevel(ctx context.Context) (int, error) {
	if m.backend.Binary == "" {
		return 0, domain.ErrNoVolumeBackend
	}
	return m.backend.MaxLevel, nil
}

// SetVolumeLevel sets the default output to level, clamped to the backend range
func (m *Mixer) SetVolumeLevel(ctx context.Context, level int) error {
	if m.backend.Binary == "" {
		return domain.ErrNoVolumeBackend
	}

	level = max(0, min(level, m.backend.MaxLevel))

	args := make([]string, len(m.backend.Args))
	for i, arg := range m.backend.Args {
		args[i] = strings.ReplaceAll(arg, "%d", strconv.Itoa(level))
	}

	m.logger.Debug("Setting volume",
		zap.String("command", m.backend.Binary),
		zap.Strings("args", args))

	output, err := m.run(ctx, m.backend.Binary, args...)
	if err != nil {
		return fmt.Errorf("failed to set volume with %s: %w (output: %s)",
			m.backend.Name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
