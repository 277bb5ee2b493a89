//go:build !linux
// +build !linux

package transport

import (
	"context"
	"fmt"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

// RFCOMMDialer is a placeholder for platforms without Linux Bluetooth sockets
type RFCOMMDialer struct {
	logger  *zap.Logger
	channel uint8
}

// NewRFCOMMDialer creates a stub dialer for unsupported platforms
func NewRFCOMMDialer(logger *zap.Logger, channel uint8) *RFCOMMDialer {
	logger.Warn("RFCOMM sockets are only supported on Linux, use the serial transport instead")
	return &RFCOMMDialer{logger: logger, channel: channel}
}

// Dial always fails on this platform
func (d *RFCOMMDialer) Dial(ctx context.Context, device domain.DeviceHandle, serviceUUID string) (domain.Connection, error) {
	return nil, fmt.Errorf("RFCOMM sockets are not supported on this platform")
}
