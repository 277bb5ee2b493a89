package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

// Manager resolves the target device and keeps dialing it until a
// connection is up or the context is cancelled.
type Manager struct {
	logger         *zap.Logger
	directory      domain.DeviceDirectory
	dialer         domain.Dialer
	deviceName     string
	serviceUUID    string
	backoff        time.Duration
	connectTimeout time.Duration
}

// NewManager creates a link manager for the configured device
func NewManager(
	logger *zap.Logger,
	cfg domain.Config,
	directory domain.DeviceDirectory,
	dialer domain.Dialer,
) *Manager {
	return &Manager{
		logger:         logger,
		directory:      directory,
		dialer:         dialer,
		deviceName:     cfg.GetDeviceName(),
		serviceUUID:    cfg.GetServiceUUID(),
		backoff:        cfg.GetReconnectBackoff(),
		connectTimeout: cfg.GetConnectTimeout(),
	}
}

// TargetIndex returns the index of the first device whose name contains
// fragment, or -1. The match is a case-sensitive substring match.
func TargetIndex(fragment string, devices []domain.DeviceHandle) int {
	for i, device := range devices {
		if strings.Contains(device.Name, fragment) {
			return i
		}
	}
	return -1
}

// ResolveTarget returns the first device whose name contains fragment
func ResolveTarget(fragment string, devices []domain.DeviceHandle) (domain.DeviceHandle, error) {
	if i := TargetIndex(fragment, devices); i >= 0 {
		return devices[i], nil
	}
	return domain.DeviceHandle{}, fmt.Errorf("%w: no known device name contains %q, please pair the device",
		domain.ErrDeviceNotFound, fragment)
}

// Resolve lists the known devices and picks the target.
// A miss is returned as domain.ErrDeviceNotFound and is not retried.
func (m *Manager) Resolve(ctx context.Context) (domain.DeviceHandle, error) {
	devices, err := m.directory.ListKnownDevices(ctx)
	if err != nil {
		return domain.DeviceHandle{}, fmt.Errorf("failed to list known devices: %w", err)
	}

	target, err := ResolveTarget(m.deviceName, devices)
	if err != nil {
		m.logger.Error("Target device not found",
			zap.String("device", m.deviceName),
			zap.Int("known", len(devices)))
		return domain.DeviceHandle{}, err
	}

	m.logger.Info("Target device resolved",
		zap.String("device", target.Name),
		zap.String("address", target.Address))

	return target, nil
}

// Connect dials target until it succeeds, waiting a fixed backoff between
// failed attempts. It only returns an error once ctx is done.
func (m *Manager) Connect(ctx context.Context, target domain.DeviceHandle) (domain.Connection, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conn, err := m.dial(ctx, target)

		// Stop may have been raised while the dial blocked
		if ctx.Err() != nil {
			if conn != nil {
				if cerr := conn.Close(); cerr != nil {
					m.logger.Warn("Failed to close late connection", zap.Error(cerr))
				}
			}
			return nil, ctx.Err()
		}

		if err == nil {
			m.logger.Info("Connected",
				zap.String("device", target.Name),
				zap.String("address", target.Address),
				zap.Int("attempt", attempt))
			return conn, nil
		}

		m.logger.Warn("Failed to connect, retrying",
			zap.String("device", target.Name),
			zap.String("address", target.Address),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", m.backoff),
			zap.Error(err))

		timer := time.NewTimer(m.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// dial runs one connect attempt bounded by the connect timeout
func (m *Manager) dial(ctx context.Context, target domain.DeviceHandle) (domain.Connection, error) {
	dialCtx, cancel := context.WithTimeout(ctx, m.connectTimeout)
	defer cancel()

	conn, err := m.dialer.Dial(dialCtx, target, m.serviceUUID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConnectFailed, target.Address, err)
	}
	return conn, nil
}
