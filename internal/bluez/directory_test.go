package bluez

import (
	"context"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

type fakeObjectManager struct {
	objects ManagedObjects
	err     error
}

func (f *fakeObjectManager) ManagedObjects() (ManagedObjects, error) { return f.objects, f.err }
func (f *fakeObjectManager) Close() error                            { return nil }

func device(props map[string]any) map[string]map[string]dbus.Variant {
	variants := make(map[string]dbus.Variant, len(props))
	for k, v := range props {
		variants[k] = dbus.MakeVariant(v)
	}
	return map[string]map[string]dbus.Variant{deviceIface: variants}
}

func TestListKnownDevices(t *testing.T) {
	objects := ManagedObjects{
		"/org/bluez/hci0": {
			"org.bluez.Adapter1": {"Powered": dbus.MakeVariant(true)},
		},
		"/org/bluez/hci0/dev_98_D3_31_F5_00_01": device(map[string]any{
			"Name":    "HC-06",
			"Address": "98:D3:31:F5:00:01",
			"Paired":  true,
			"UUIDs":   []string{"00001101-0000-1000-8000-00805f9b34fb"},
		}),
		"/org/bluez/hci0/dev_00_11_22_33_44_55": device(map[string]any{
			"Alias":  "Pixel Buds",
			"Paired": true,
		}),
		"/org/bluez/hci0/dev_AA_AA_AA_AA_AA_AA": device(map[string]any{
			"Name":    "Stranger Phone",
			"Address": "AA:AA:AA:AA:AA:AA",
			"Paired":  false,
		}),
	}

	d := &Directory{logger: zap.NewNop(), bus: &fakeObjectManager{objects: objects}}

	devices, err := d.ListKnownDevices(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(devices) != 2 {
		t.Fatalf("Expected 2 paired devices, got %d: %+v", len(devices), devices)
	}

	// Ordered by object path
	if devices[0].Name != "Pixel Buds" {
		t.Errorf("Alias fallback: want Pixel Buds, got %q", devices[0].Name)
	}
	if devices[0].Address != "00:11:22:33:44:55" {
		t.Errorf("Address from path: want 00:11:22:33:44:55, got %q", devices[0].Address)
	}
	if devices[1].Name != "HC-06" || devices[1].Address != "98:D3:31:F5:00:01" {
		t.Errorf("Unexpected second device: %+v", devices[1])
	}
	if len(devices[1].UUIDs) != 1 {
		t.Errorf("Expected UUIDs to be carried over, got %v", devices[1].UUIDs)
	}
}

func TestListKnownDevices_BusError(t *testing.T) {
	d := &Directory{logger: zap.NewNop(), bus: &fakeObjectManager{err: fmt.Errorf("org.bluez not found")}}

	if _, err := d.ListKnownDevices(context.Background()); err == nil {
		t.Error("Expected error, got nil")
	}
}

func TestMacFromPath(t *testing.T) {
	tests := []struct {
		path     dbus.ObjectPath
		expected string
	}{
		{path: "/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF", expected: "AA:BB:CC:DD:EE:FF"},
		{path: "/org/bluez/hci1/dev_98_D3_31_F5_00_01", expected: "98:D3:31:F5:00:01"},
		{path: "/org/bluez/hci0", expected: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			if got := macFromPath(tt.path); got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
