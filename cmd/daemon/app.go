package main

import (
	"context"
	"fmt"

	"github.com/genricoloni/btremote/internal/bluez"
	"github.com/genricoloni/btremote/internal/config"
	"github.com/genricoloni/btremote/internal/decoder"
	"github.com/genricoloni/btremote/internal/domain"
	"github.com/genricoloni/btremote/internal/engine"
	"github.com/genricoloni/btremote/internal/link"
	"github.com/genricoloni/btremote/internal/mpris"
	"github.com/genricoloni/btremote/internal/transport"
	"github.com/genricoloni/btremote/internal/volume"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// appOptions is the full daemon graph
func appOptions(v *viper.Viper) fx.Option {
	return fx.Options(
		baseOptions(v),
		platformModule,
		coreModule,
		fx.Invoke(registerHooks),
	)
}

// baseOptions provides the logger and configuration
func baseOptions(v *viper.Viper) fx.Option {
	return fx.Options(
		fx.Supply(v),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			provideLogger,
			provideConfig,
		),
	)
}

// coreModule wires the link manager, decoder and engine
var coreModule = fx.Module("core",
	fx.Provide(
		fx.Annotate(link.NewManager, fx.As(new(engine.Link))),
		fx.Annotate(decoder.NewDecoder, fx.As(new(engine.StreamDecoder))),
		engine.NewEngine,
	),
)

// platformModule provides the ports backed by D-Bus, sockets and the mixer
var platformModule = fx.Module("platform",
	fx.Provide(
		newPlayback,
		newVolume,
		newTransport,
	),
)

// newLogger creates a production zap logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func provideLogger(v *viper.Viper) (*zap.Logger, error) {
	return newLogger(v.GetString("log_level"))
}

func provideConfig(logger *zap.Logger, v *viper.Viper) (domain.Config, error) {
	return config.NewAppConfig(logger, v)
}

func newPlayback(lc fx.Lifecycle, logger *zap.Logger) (domain.PlaybackControl, error) {
	c, err := mpris.NewController(logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}

func newVolume(logger *zap.Logger, cfg domain.Config) (domain.SystemVolume, error) {
	return volume.NewMixer(logger, cfg.GetVolumeBackend())
}

// newTransport provides the device directory and dialer for the configured transport
func newTransport(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) (domain.DeviceDirectory, domain.Dialer, error) {
	switch cfg.GetTransport() {
	case config.TransportSerial:
		return transport.NewSerialDirectory(logger), transport.NewSerialDialer(logger, cfg.GetSerialBaud()), nil
	case config.TransportRFCOMM:
		dir, err := bluez.NewDirectory(logger)
		if err != nil {
			return nil, nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return dir.Close()
			},
		})
		return dir, transport.NewRFCOMMDialer(logger, cfg.GetRFCOMMChannel()), nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cfg.GetTransport())
	}
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, e *engine.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("btremote daemon started")
			return e.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return e.Stop(ctx)
		},
	})
}
