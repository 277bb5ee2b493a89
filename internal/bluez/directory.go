package bluez

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/genricoloni/btremote/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	busName       = "org.bluez"
	deviceIface   = "org.bluez.Device1"
	objectManager = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
)

// ManagedObjects maps object paths to their interfaces and properties
type ManagedObjects map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// ObjectManager is the part of the BlueZ bus the directory needs
type ObjectManager interface {
	ManagedObjects() (ManagedObjects, error)
	Close() error
}

// systemBus wraps a system D-Bus connection for BlueZ operations
type systemBus struct {
	conn *dbus.Conn
}

func newSystemBus() (*systemBus, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	return &systemBus{conn: conn}, nil
}

func (b *systemBus) ManagedObjects() (ManagedObjects, error) {
	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	err := b.conn.Object(busName, "/").Call(objectManager, 0).Store(&objects)
	if err != nil {
		return nil, fmt.Errorf("list bluez objects: %w (is bluetooth.service running?)", err)
	}
	return ManagedObjects(objects), nil
}

func (b *systemBus) Close() error {
	return b.conn.Close()
}

// Directory lists paired Bluetooth devices known to BlueZ
type Directory struct {
	logger *zap.Logger
	bus    ObjectManager
}

// NewDirectory connects to the system bus
func NewDirectory(logger *zap.Logger) (*Directory, error) {
	bus, err := newSystemBus()
	if err != nil {
		return nil, err
	}
	return &Directory{logger: logger, bus: bus}, nil
}

// Close closes the system bus connection
func (d *Directory) Close() error {
	return d.bus.Close()
}

// ListKnownDevices returns paired devices ordered by object path
func (d *Directory) ListKnownDevices(ctx context.Context) ([]domain.DeviceHandle, error) {
	objects, err := d.bus.ManagedObjects()
	if err != nil {
		return nil, err
	}

	paths := make([]dbus.ObjectPath, 0, len(objects))
	for path := range objects {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	var devices []domain.DeviceHandle
	for _, path := range paths {
		props, ok := objects[path][deviceIface]
		if !ok {
			continue
		}
		if paired, _ := props["Paired"].Value().(bool); !paired {
			continue
		}

		device := domain.DeviceHandle{
			Name:    stringProp(props, "Name"),
			Address: stringProp(props, "Address"),
		}
		if device.Name == "" {
			device.Name = stringProp(props, "Alias")
		}
		if device.Address == "" {
			device.Address = macFromPath(path)
		}
		if uuids, ok := props["UUIDs"].Value().([]string); ok {
			device.UUIDs = uuids
		}

		devices = append(devices, device)
	}

	d.logger.Debug("Paired devices listed", zap.Int("count", len(devices)))
	return devices, nil
}

func stringProp(props map[string]dbus.Variant, name string) string {
	v, ok := props[name]
	if !ok {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

// macFromPath extracts a MAC address from a BlueZ device object path
// like /org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF.
func macFromPath(path dbus.ObjectPath) string {
	s := string(path)
	i := strings.LastIndex(s, "/dev_")
	if i < 0 {
		return ""
	}
	return strings.ReplaceAll(s[i+len("/dev_"):], "_", ":")
}
