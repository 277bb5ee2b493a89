package domain

import (
	"context"
	"io"
	"time"
)

// PlaybackControl queries and drives the host's active media session.
// Implementations should handle D-Bus/MPRIS communication
//
//go:generate mockgen -destination=mocks/ports_mock.go -package=mocks github.com/genricoloni/btremote/internal/domain PlaybackControl,SystemVolume,DeviceDirectory,Dialer
type PlaybackControl interface {
	// ActiveSession returns the current media session, or nil if none is available.
	// It is called freshly for every command; the result must not be cached.
	ActiveSession(ctx context.Context) (*Session, error)

	// PlaybackState returns the session's state, or nil if the player reports none
	PlaybackState(ctx context.Context, s Session) (*PlaybackState, error)

	Play(ctx context.Context, s Session) error
	Pause(ctx context.Context, s Session) error
	SkipNext(ctx context.Context, s Session) error
	SkipPrevious(ctx context.Context, s Session) error

	// SeekTo moves the playback position to an absolute offset in milliseconds
	SeekTo(ctx context.Context, s Session, positionMs int64) error
}

// SystemVolume controls the system music output level
type SystemVolume interface {
	// MaxVolumeLevel returns the level that corresponds to 100%
	MaxVolumeLevel(ctx context.Context) (int, error)

	// SetVolumeLevel sets the output to an absolute level in [0, MaxVolumeLevel]
	SetVolumeLevel(ctx context.Context, level int) error
}

// DeviceDirectory lists devices previously paired with the host
type DeviceDirectory interface {
	// ListKnownDevices returns devices in a stable order
	ListKnownDevices(ctx context.Context) ([]DeviceHandle, error)
}

// Connection is a duplex byte stream to the remote
type Connection interface {
	io.ReadWriteCloser
}

// Dialer opens a Connection to a device
type Dialer interface {
	// Dial attempts a single connect to the service identified by serviceUUID.
	// It must give up once ctx is done.
	Dial(ctx context.Context, device DeviceHandle, serviceUUID string) (Connection, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GetDeviceName returns the name fragment used to pick the target device
	GetDeviceName() string

	// GetServiceUUID returns the service class the link connects to
	GetServiceUUID() string

	// GetTransport returns "rfcomm" or "serial"
	GetTransport() string

	// GetRFCOMMChannel returns the RFCOMM channel dialed on the target
	GetRFCOMMChannel() uint8

	// GetSerialBaud returns the baud rate used by the serial transport
	GetSerialBaud() int

	// GetConnectTimeout bounds a single connect attempt
	GetConnectTimeout() time.Duration

	// GetReconnectBackoff is the fixed delay between connect attempts
	GetReconnectBackoff() time.Duration

	// GetSeekOffset is how far SeekForward moves the position
	GetSeekOffset() time.Duration

	// GetVolumeBackend returns the mixer backend name or "auto"
	GetVolumeBackend() string
}
