//go:build linux
// +build linux

package transport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// pollSlice is how long a single poll waits before cancellation is rechecked
const pollSlice = 100 * time.Millisecond

// RFCOMMDialer opens RFCOMM stream sockets to paired devices
type RFCOMMDialer struct {
	logger  *zap.Logger
	channel uint8
}

// NewRFCOMMDialer creates a dialer for the given RFCOMM channel
func NewRFCOMMDialer(logger *zap.Logger, channel uint8) *RFCOMMDialer {
	return &RFCOMMDialer{logger: logger, channel: channel}
}

// Dial connects to device on the configured channel. The connect is
// non-blocking and abandoned as soon as ctx is done.
func (d *RFCOMMDialer) Dial(ctx context.Context, device domain.DeviceHandle, serviceUUID string) (domain.Connection, error) {
	if len(device.UUIDs) > 0 && !advertises(device.UUIDs, serviceUUID) {
		d.logger.Warn("Device does not advertise the serial port service, trying anyway",
			zap.String("device", device.Name),
			zap.String("uuid", serviceUUID))
	}

	addr, err := parseBDAddr(device.Address)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, fmt.Errorf("failed to create RFCOMM socket: %w", err)
	}

	err = unix.Connect(fd, &unix.SockaddrRFCOMM{Addr: addr, Channel: d.channel})
	if err != nil && !errors.Is(err, unix.EINPROGRESS) {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("failed to connect to RFCOMM channel %d: %w", d.channel, err)
	}

	if err != nil {
		if err := waitConnected(ctx, fd); err != nil {
			_ = unix.Close(fd)
			return nil, fmt.Errorf("failed to connect to RFCOMM channel %d: %w", d.channel, err)
		}
	}

	d.logger.Debug("RFCOMM socket connected",
		zap.String("address", device.Address),
		zap.Uint8("channel", d.channel))

	// A non-blocking fd gets a pollable File, so Close unblocks a pending Read
	return os.NewFile(uintptr(fd), "rfcomm:"+device.Address), nil
}

// waitConnected polls a connecting socket until it is writable or ctx is done
func waitConnected(ctx context.Context, fd int) error {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLOUT}}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := unix.Poll(fds, int(pollSlice/time.Millisecond))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			continue
		}

		soerr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if err != nil {
			return fmt.Errorf("getsockopt: %w", err)
		}
		if soerr != 0 {
			return unix.Errno(soerr)
		}
		return nil
	}
}
