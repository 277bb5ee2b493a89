package decoder

import (
	"fmt"
	"strings"

	"github.com/genricoloni/btremote/internal/domain"
)

// ReadBufferSize is the most bytes taken from the stream by a single read.
// One read is one command record.
const ReadBufferSize = 1024

const volumePrefix = "!"

var fixedCommands = map[string]domain.CommandKind{
	"P!": domain.CommandTogglePlayPause,
	"F!": domain.CommandSeekForward,
	"N!": domain.CommandNext,
	"B!": domain.CommandPrevious,
}

// Parse decodes a single chunk.
// Unrecognized text yields CommandUnknown and no error; only a volume chunk
// without two digits after the prefix is an error.
func Parse(chunk []byte) (domain.Command, error) {
	text := string(chunk)

	if kind, ok := fixedCommands[text]; ok {
		return domain.Command{Kind: kind}, nil
	}

	if strings.HasPrefix(text, volumePrefix) {
		percent, err := parseVolume(text)
		if err != nil {
			return domain.Command{}, err
		}
		return domain.Command{Kind: domain.CommandSetVolume, Percent: percent}, nil
	}

	return domain.Command{Kind: domain.CommandUnknown}, nil
}

// parseVolume reads the two digits at offset 1 of a "!DD" chunk.
// Anything after them is ignored.
func parseVolume(text string) (int, error) {
	if len(text) < len(volumePrefix)+2 {
		return 0, fmt.Errorf("%w: %q is too short", domain.ErrMalformedVolume, text)
	}

	digits := text[len(volumePrefix) : len(volumePrefix)+2]
	percent := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", domain.ErrMalformedVolume, digits)
		}
		percent = percent*10 + int(c-'0')
	}
	return percent, nil
}
