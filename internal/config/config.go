package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultDeviceName       = "HC-06"
	defaultServiceUUID      = "00001101-0000-1000-8000-00805F9B34FB"
	defaultTransport        = TransportRFCOMM
	defaultRFCOMMChannel    = 1
	defaultSerialBaud       = 9600
	defaultConnectTimeout   = 5 * time.Second
	defaultReconnectBackoff = 1000 * time.Millisecond
	defaultSeekOffset       = 10000 * time.Millisecond
	defaultVolumeBackend    = "auto"
	defaultLogLevel         = "info"
)

// Supported link transports
const (
	TransportRFCOMM = "rfcomm"
	TransportSerial = "serial"
)

// NewViper prepares a viper instance with defaults, the optional config
// file and BTREMOTE_* environment overrides. An explicit configFile must
// exist; the default locations may be empty.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("device_name", defaultDeviceName)
	v.SetDefault("service_uuid", defaultServiceUUID)
	v.SetDefault("transport", defaultTransport)
	v.SetDefault("rfcomm_channel", defaultRFCOMMChannel)
	v.SetDefault("serial_baud", defaultSerialBaud)
	v.SetDefault("connect_timeout", defaultConnectTimeout)
	v.SetDefault("reconnect_backoff", defaultReconnectBackoff)
	v.SetDefault("seek_offset", defaultSeekOffset)
	v.SetDefault("volume_backend", defaultVolumeBackend)
	v.SetDefault("log_level", defaultLogLevel)

	v.SetEnvPrefix("BTREMOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// configDir returns $XDG_CONFIG_HOME/btremote, falling back to ~/.config/btremote
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "btremote")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "btremote")
}

// AppConfig holds application configuration
type AppConfig struct {
	logger           *zap.Logger
	deviceName       string
	serviceUUID      string
	transport        string
	rfcommChannel    uint8
	serialBaud       int
	connectTimeout   time.Duration
	reconnectBackoff time.Duration
	seekOffset       time.Duration
	volumeBackend    string
}

// NewAppConfig validates the values held by v
func NewAppConfig(logger *zap.Logger, v *viper.Viper) (*AppConfig, error) {
	transport := strings.ToLower(v.GetString("transport"))
	if transport != TransportRFCOMM && transport != TransportSerial {
		return nil, fmt.Errorf("unknown transport %q (want %s or %s)", transport, TransportRFCOMM, TransportSerial)
	}

	channel := v.GetInt("rfcomm_channel")
	if channel < 1 || channel > 30 {
		return nil, fmt.Errorf("rfcomm_channel must be in [1, 30], got %d", channel)
	}

	baud := v.GetInt("serial_baud")
	if baud <= 0 {
		return nil, fmt.Errorf("serial_baud must be positive, got %d", baud)
	}

	durations := map[string]time.Duration{}
	for _, key := range []string{"connect_timeout", "reconnect_backoff", "seek_offset"} {
		d := v.GetDuration(key)
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", key, d)
		}
		durations[key] = d
	}

	deviceName := v.GetString("device_name")
	if deviceName == "" {
		return nil, fmt.Errorf("device_name must not be empty")
	}

	cfg := &AppConfig{
		logger:           logger,
		deviceName:       deviceName,
		serviceUUID:      v.GetString("service_uuid"),
		transport:        transport,
		rfcommChannel:    uint8(channel),
		serialBaud:       baud,
		connectTimeout:   durations["connect_timeout"],
		reconnectBackoff: durations["reconnect_backoff"],
		seekOffset:       durations["seek_offset"],
		volumeBackend:    v.GetString("volume_backend"),
	}

	logger.Info("Configuration loaded",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.String("device", cfg.deviceName),
		zap.String("transport", cfg.transport),
		zap.Uint8("channel", cfg.rfcommChannel),
		zap.Duration("connectTimeout", cfg.connectTimeout),
		zap.Duration("reconnectBackoff", cfg.reconnectBackoff),
		zap.Duration("seekOffset", cfg.seekOffset),
		zap.String("volumeBackend", cfg.volumeBackend))

	return cfg, nil
}

// GetDeviceName returns the name fragment used to pick the target device
func (c *AppConfig) GetDeviceName() string {
	return c.deviceName
}

// GetServiceUUID returns the service class UUID
func (c *AppConfig) GetServiceUUID() string {
	return c.serviceUUID
}

// GetTransport returns the link transport
func (c *AppConfig) GetTransport() string {
	return c.transport
}

func (c *AppConfig) GetRFCOMMChannel() uint8 {
	return c.rfcommChannel
}

func (c *AppConfig) GetSerialBaud() int {
	return c.serialBaud
}

// GetConnectTimeout bounds a single connect attempt
func (c *AppConfig) GetConnectTimeout() time.Duration {
	return c.connectTimeout
}

// GetReconnectBackoff returns the delay between connect attempts
func (c *AppConfig) GetReconnectBackoff() time.Duration {
	return c.reconnectBackoff
}

// GetSeekOffset returns how far a seek command moves the position
func (c *AppConfig) GetSeekOffset() time.Duration {
	return c.seekOffset
}

// GetVolumeBackend returns the mixer backend name or "auto"
func (c *AppConfig) GetVolumeBackend() string {
	return c.volumeBackend
}
