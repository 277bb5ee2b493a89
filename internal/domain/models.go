package domain

import "fmt"

// CommandKind identifies a decoded remote command
type CommandKind int

const (
	// CommandUnknown is any chunk that does not match the protocol; it is ignored
	CommandUnknown CommandKind = iota
	// CommandTogglePlayPause pauses a playing session or resumes a paused one
	CommandTogglePlayPause
	// CommandSeekForward advances the playback position by a fixed offset
	CommandSeekForward
	// CommandNext skips to the next track
	CommandNext
	// CommandPrevious skips to the previous track
	CommandPrevious
	// CommandSetVolume sets the system music volume to a percentage
	CommandSetVolume
)

func (k CommandKind) String() string {
	switch k {
	case CommandTogglePlayPause:
		return "toggle"
	case CommandSeekForward:
		return "seek-forward"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandSetVolume:
		return "set-volume"
	default:
		return "unknown"
	}
}

// Command is one decoded instruction. It lives only for a single dispatch.
type Command struct {
	Kind CommandKind
	// Percent is set for CommandSetVolume, 0-99
	Percent int
}

func (c Command) String() string {
	if c.Kind == CommandSetVolume {
		return fmt.Sprintf("%s(%d%%)", c.Kind, c.Percent)
	}
	return c.Kind.String()
}

// DeviceHandle is a known (paired) device that can be dialed
type DeviceHandle struct {
	// Name is the advertised device name, matched against the configured fragment
	Name string
	// Address is the transport address: a Bluetooth MAC or a tty path
	Address string
	// UUIDs lists the service classes the device advertises, if known
	UUIDs []string
}

// Session identifies the active media player
type Session struct {
	// BusName is the well-known bus name, e.g. org.mpris.MediaPlayer2.spotify
	BusName string
}

// PlaybackState is a snapshot of the session's transport state
type PlaybackState struct {
	IsPlaying  bool
	PositionMs int64
	// HasPosition is false when the player reported no usable position
	HasPosition bool
}

// PlayerStatus represents the current state of the media player
type PlayerStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlayerStatus = "Stopped"
)
