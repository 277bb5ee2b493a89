package transport

import (
	"fmt"
	"strconv"
	"strings"
)

// parseBDAddr converts "AA:BB:CC:DD:EE:FF" into the little-endian byte
// order the kernel expects in a Bluetooth socket address.
func parseBDAddr(address string) ([6]uint8, error) {
	var addr [6]uint8

	parts := strings.Split(address, ":")
	if len(parts) != 6 {
		return addr, fmt.Errorf("invalid bluetooth address %q", address)
	}

	for i, part := range parts {
		if len(part) != 2 {
			return addr, fmt.Errorf("invalid bluetooth address %q", address)
		}
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return addr, fmt.Errorf("invalid bluetooth address %q: %w", address, err)
		}
		addr[5-i] = uint8(b)
	}
	return addr, nil
}

// advertises reports whether uuid is among the device's service UUIDs.
// BlueZ reports them lowercase, configuration usually has them uppercase.
func advertises(uuids []string, uuid string) bool {
	for _, u := range uuids {
		if strings.EqualFold(u, uuid) {
			return true
		}
	}
	return false
}
