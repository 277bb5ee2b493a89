package transport

import (
	"context"
	"fmt"
	"sort"

	"github.com/genricoloni/btremote/internal/domain"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

// SerialDirectory lists serial ports, e.g. ttys created by `rfcomm bind`.
// The port path is both the device name and its address.
type SerialDirectory struct {
	logger *zap.Logger
	ports  func() ([]string, error)
}

// NewSerialDirectory creates a directory backed by the system's serial ports
func NewSerialDirectory(logger *zap.Logger) *SerialDirectory {
	return &SerialDirectory{logger: logger, ports: serial.GetPortsList}
}

// ListKnownDevices returns the available ports sorted by path
func (d *SerialDirectory) ListKnownDevices(ctx context.Context) ([]domain.DeviceHandle, error) {
	ports, err := d.ports()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	sort.Strings(ports)

	devices := make([]domain.DeviceHandle, 0, len(ports))
	for _, port := range ports {
		devices = append(devices, domain.DeviceHandle{Name: port, Address: port})
	}

	d.logger.Debug("Serial ports listed", zap.Int("count", len(devices)))
	return devices, nil
}

// SerialDialer opens a serial port in 8N1 mode
type SerialDialer struct {
	logger *zap.Logger
	baud   int
}

// NewSerialDialer creates a dialer using the given baud rate
func NewSerialDialer(logger *zap.Logger, baud int) *SerialDialer {
	return &SerialDialer{logger: logger, baud: baud}
}

// Dial opens the port named by device.Address. The service UUID is implied
// by the tty binding and not checked here. No read timeout is set: a
// timed-out read would look like an empty read and end the session.
func (d *SerialDialer) Dial(ctx context.Context, device domain.DeviceHandle, serviceUUID string) (domain.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	port, err := serial.Open(device.Address, &serial.Mode{
		BaudRate: d.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	d.logger.Debug("Serial port opened",
		zap.String("port", device.Address),
		zap.Int("baud", d.baud))

	return port, nil
}
