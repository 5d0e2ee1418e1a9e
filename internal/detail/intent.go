package detail

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownIntent = errors.New("unknown intent")

type IntentKind string

const (
	IntentToggle  IntentKind = "toggle"
	IntentMute    IntentKind = "mute"
	IntentUnmute  IntentKind = "unmute"
	IntentHover   IntentKind = "hover"
	IntentLike    IntentKind = "like"
	IntentUnlike  IntentKind = "unlike"
	IntentDraft   IntentKind = "draft"
	IntentComment IntentKind = "comment"
	IntentShow    IntentKind = "show"
	IntentQuit    IntentKind = "quit"
)

type Intent struct {
	Kind   IntentKind
	Text   string
	Active bool
}

// ParseIntent parses a console line such as "hover on" or "comment nice video".
func ParseIntent(line string) (Intent, error) {
	line = strings.TrimSpace(line)
	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(word) {
	case "play", "pause", "toggle":
		return Intent{Kind: IntentToggle}, nil
	case "mute":
		return Intent{Kind: IntentMute}, nil
	case "unmute":
		return Intent{Kind: IntentUnmute}, nil
	case "hover":
		switch rest {
		case "on", "":
			return Intent{Kind: IntentHover, Active: true}, nil
		case "off":
			return Intent{Kind: IntentHover}, nil
		}
		return Intent{}, fmt.Errorf("%w: hover %q", ErrUnknownIntent, rest)
	case "like":
		return Intent{Kind: IntentLike}, nil
	case "unlike":
		return Intent{Kind: IntentUnlike}, nil
	case "draft":
		return Intent{Kind: IntentDraft, Text: rest}, nil
	case "comment":
		return Intent{Kind: IntentComment, Text: rest}, nil
	case "show", "":
		return Intent{Kind: IntentShow}, nil
	case "quit", "exit":
		return Intent{Kind: IntentQuit}, nil
	}

	return Intent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, word)
}
