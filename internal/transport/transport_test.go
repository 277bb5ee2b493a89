package transport

import (
	"context"
	"fmt"
	"testing"

	"github.com/genricoloni/btremote/internal/domain"
	"go.uber.org/zap"
)

func TestParseBDAddr(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		expected    [6]uint8
		expectError bool
	}{
		{
			name:     "HC-06 Address Is Reversed",
			address:  "98:D3:31:F5:00:01",
			expected: [6]uint8{0x01, 0x00, 0xF5, 0x31, 0xD3, 0x98},
		},
		{
			name:     "Lowercase",
			address:  "aa:bb:cc:dd:ee:ff",
			expected: [6]uint8{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa},
		},
		{name: "Too Short", address: "AA:BB:CC", expectError: true},
		{name: "Not Hex", address: "GG:BB:CC:DD:EE:FF", expectError: true},
		{name: "Tty Path", address: "/dev/rfcomm0", expectError: true},
		{name: "Wide Octet", address: "AAA:BB:CC:DD:EE:F", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := parseBDAddr(tt.address)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.address)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if addr != tt.expected {
				t.Errorf("want %x, got %x", tt.expected, addr)
			}
		})
	}
}

func TestAdvertises(t *testing.T) {
	uuids := []string{"0000110b-0000-1000-8000-00805f9b34fb", "00001101-0000-1000-8000-00805f9b34fb"}

	if !advertises(uuids, "00001101-0000-1000-8000-00805F9B34FB") {
		t.Error("Expected case-insensitive match")
	}
	if advertises(uuids, "0000111e-0000-1000-8000-00805f9b34fb") {
		t.Error("Unexpected match")
	}
}

func TestSerialDirectory(t *testing.T) {
	d := &SerialDirectory{
		logger: zap.NewNop(),
		ports: func() ([]string, error) {
			return []string{"/dev/ttyUSB0", "/dev/rfcomm0"}, nil
		},
	}

	devices, err := d.ListKnownDevices(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []domain.DeviceHandle{
		{Name: "/dev/rfcomm0", Address: "/dev/rfcomm0"},
		{Name: "/dev/ttyUSB0", Address: "/dev/ttyUSB0"},
	}
	if len(devices) != len(expected) {
		t.Fatalf("want %d devices, got %d", len(expected), len(devices))
	}
	for i := range expected {
		if devices[i].Name != expected[i].Name || devices[i].Address != expected[i].Address {
			t.Errorf("device %d: want %+v, got %+v", i, expected[i], devices[i])
		}
	}
}

func TestSerialDirectory_Error(t *testing.T) {
	d := &SerialDirectory{
		logger: zap.NewNop(),
		ports:  func() ([]string, error) { return nil, fmt.Errorf("permission denied") },
	}

	if _, err := d.ListKnownDevices(context.Background()); err == nil {
		t.Error("Expected error, got nil")
	}
}

func TestSerialDialer_StoppedContext(t *testing.T) {
	d := NewSerialDialer(zap.NewNop(), 9600)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Dial(ctx, domain.DeviceHandle{Address: "/dev/null-port"}, ""); err == nil {
		t.Error("Expected error, got nil")
	}
}

func TestSerialDialer_MissingPort(t *testing.T) {
	d := NewSerialDialer(zap.NewNop(), 9600)

	if _, err := d.Dial(context.Background(), domain.DeviceHandle{Address: "/dev/btremote-does-not-exist"}, ""); err == nil {
		t.Error("Expected error, got nil")
	}
}
