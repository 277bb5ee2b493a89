package domain

import "errors"

var (
	// ErrDeviceNotFound means no known device matches the configured name.
	// Retrying cannot fix it.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrConnectFailed wraps a failed connect attempt; the link retries it
	ErrConnectFailed = errors.New("connect failed")

	// ErrStreamEnded means the connection closed or failed while reading
	ErrStreamEnded = errors.New("stream ended")

	// ErrMalformedVolume means a volume chunk did not carry two digits
	ErrMalformedVolume = errors.New("malformed volume value")

	// ErrNoVolumeBackend means no supported mixer command was found
	ErrNoVolumeBackend = errors.New("no volume backend available")
)
