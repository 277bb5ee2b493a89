//go:build linux
// +build linux

package mpris

import (
	"context"
	"fmt"
	"testing"

	"github.com/genricoloni/btremote/internal/domain"
	"github.com/genricoloni/btremote/internal/mpris/mocks"
	"github.com/godbus/dbus/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	spotify    = "org.mpris.MediaPlayer2.spotify"
	statusProp = "org.mpris.MediaPlayer2.Player.PlaybackStatus"
	posProp    = "org.mpris.MediaPlayer2.Player.Position"
	metaProp   = "org.mpris.MediaPlayer2.Player.Metadata"
	objPath    = "/org/mpris/MediaPlayer2"
)

func newTestController(ctrl *gomock.Controller) (*Controller, *mocks.MockDBusClient) {
	client := mocks.NewMockDBusClient(ctrl)
	return &Controller{logger: zap.NewNop(), conn: client}, client
}

func TestActiveSession(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mocks.MockDBusClient)
		expectError bool
		expected    *domain.Session
	}{
		{
			name: "First Player Wins",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().ListNames(gomock.Any()).Return([]string{
					"org.freedesktop.DBus",
					"org.mpris.MediaPlayer2.spotify",
					"org.mpris.MediaPlayer2.vlc",
					"com.example.OtherApp",
				}, nil)
			},
			expected: &domain.Session{BusName: spotify},
		},
		{
			name: "No Players",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().ListNames(gomock.Any()).Return([]string{"org.freedesktop.DBus"}, nil)
			},
			expected: nil,
		},
		{
			name: "ListNames Fails",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().ListNames(gomock.Any()).Return(nil, fmt.Errorf("bus error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, client := newTestController(ctrl)
			tt.setupMock(client)

			session, err := c.ActiveSession(context.Background())

			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.expected == nil {
				if session != nil {
					t.Errorf("Expected no session, got %+v", session)
				}
				return
			}
			if session == nil || *session != *tt.expected {
				t.Errorf("Session mismatch: want %+v, got %+v", tt.expected, session)
			}
		})
	}
}

func TestPlaybackState(t *testing.T) {
	session := domain.Session{BusName: spotify}

	tests := []struct {
		name        string
		setupMock   func(*mocks.MockDBusClient)
		expectError bool
		expected    *domain.PlaybackState
	}{
		{
			name: "Playing With Position",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, statusProp).Return(dbus.MakeVariant("Playing"), nil)
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, posProp).Return(dbus.MakeVariant(int64(42_500_000)), nil)
			},
			expected: &domain.PlaybackState{IsPlaying: true, PositionMs: 42_500, HasPosition: true},
		},
		{
			name: "Paused Without Position",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, statusProp).Return(dbus.MakeVariant("Paused"), nil)
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, posProp).Return(dbus.Variant{}, fmt.Errorf("not supported"))
			},
			expected: &domain.PlaybackState{IsPlaying: false, HasPosition: false},
		},
		{
			name: "Position With Unexpected Type",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, statusProp).Return(dbus.MakeVariant("Playing"), nil)
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, posProp).Return(dbus.MakeVariant("42"), nil)
			},
			expected: &domain.PlaybackState{IsPlaying: true, HasPosition: false},
		},
		{
			name: "Invalid Status Type",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, statusProp).Return(dbus.MakeVariant(12345), nil)
			},
			expected: nil,
		},
		{
			name: "DBus Error",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, statusProp).Return(dbus.Variant{}, fmt.Errorf("connection timeout"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, client := newTestController(ctrl)
			tt.setupMock(client)

			state, err := c.PlaybackState(context.Background(), session)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.expected == nil {
				if state != nil {
					t.Errorf("Expected no state, got %+v", state)
				}
				return
			}
			if state == nil || *state != *tt.expected {
				t.Errorf("State mismatch: want %+v, got %+v", tt.expected, state)
			}
		})
	}
}

func TestTransportCalls(t *testing.T) {
	session := domain.Session{BusName: spotify}

	tests := []struct {
		name   string
		method string
		invoke func(*Controller) error
	}{
		{name: "Play", method: "Play", invoke: func(c *Controller) error { return c.Play(context.Background(), session) }},
		{name: "Pause", method: "Pause", invoke: func(c *Controller) error { return c.Pause(context.Background(), session) }},
		{name: "Next", method: "Next", invoke: func(c *Controller) error { return c.SkipNext(context.Background(), session) }},
		{name: "Previous", method: "Previous", invoke: func(c *Controller) error { return c.SkipPrevious(context.Background(), session) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, client := newTestController(ctrl)
			client.EXPECT().Call(gomock.Any(), spotify, objPath, "org.mpris.MediaPlayer2.Player."+tt.method).Return(nil)

			if err := tt.invoke(c); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestTransportCalls_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, client := newTestController(ctrl)
	client.EXPECT().Call(gomock.Any(), spotify, objPath, "org.mpris.MediaPlayer2.Player.Next").Return(fmt.Errorf("no reply"))

	if err := c.SkipNext(context.Background(), domain.Session{BusName: spotify}); err == nil {
		t.Error("Expected error, got nil")
	}
}

func TestSeekTo(t *testing.T) {
	session := domain.Session{BusName: spotify}

	tests := []struct {
		name        string
		setupMock   func(*mocks.MockDBusClient)
		expectError bool
	}{
		{
			name: "SetPosition With Track Id",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, metaProp).
					Return(dbus.MakeVariant(map[string]dbus.Variant{
						"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/com/spotify/track/1")),
					}), nil)
				m.EXPECT().Call(gomock.Any(), spotify, objPath, "org.mpris.MediaPlayer2.Player.SetPosition",
					dbus.ObjectPath("/com/spotify/track/1"), int64(52_000_000)).Return(nil)
			},
		},
		{
			name: "String Track Id",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, metaProp).
					Return(dbus.MakeVariant(map[string]dbus.Variant{
						"mpris:trackid": dbus.MakeVariant("/org/mpd/Tracks/7"),
					}), nil)
				m.EXPECT().Call(gomock.Any(), spotify, objPath, "org.mpris.MediaPlayer2.Player.SetPosition",
					dbus.ObjectPath("/org/mpd/Tracks/7"), int64(52_000_000)).Return(nil)
			},
		},
		{
			name: "Missing Track Id",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, metaProp).
					Return(dbus.MakeVariant(map[string]dbus.Variant{
						"xesam:title": dbus.MakeVariant("Song A"),
					}), nil)
			},
			expectError: true,
		},
		{
			name: "Metadata Is Not A Map",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().GetProperty(gomock.Any(), spotify, objPath, metaProp).Return(dbus.MakeVariant(12345), nil)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, client := newTestController(ctrl)
			tt.setupMock(client)

			err := c.SeekTo(context.Background(), session, 52_000)
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

type ctxKey struct{}

// TestCallsUseCallerContext checks that every bus call runs under the
// context given to the port method, so a hung player can be abandoned.
func TestCallsUseCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, client := newTestController(ctrl)
	session := domain.Session{BusName: spotify}

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "caller"))
	defer cancel()

	client.EXPECT().ListNames(ctx).Return([]string{spotify}, nil)
	client.EXPECT().GetProperty(ctx, spotify, objPath, statusProp).Return(dbus.MakeVariant("Playing"), nil)
	client.EXPECT().GetProperty(ctx, spotify, objPath, posProp).Return(dbus.MakeVariant(int64(1_000_000)), nil)
	client.EXPECT().Call(ctx, spotify, objPath, "org.mpris.MediaPlayer2.Player.Pause").Return(nil)

	if _, err := c.ActiveSession(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := c.PlaybackState(ctx, session); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := c.Pause(ctx, session); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}
