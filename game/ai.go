package game

import (
	"fmt"
	"strings"

	"puyoterm/engine"
	"puyoterm/engine/randomai"
	"puyoterm/engine/rulebase"
)

// Kind selects who controls the active piece.
type Kind string

const (
	Player   Kind = "player"
	Random   Kind = "random"
	RuleBase Kind = "rulebase"
)

// Kinds lists every mode in the order they are offered.
var Kinds = []Kind{Player, Random, RuleBase}

// Label returns the name shown in mode selection.
func (k Kind) Label() string {
	switch k {
	case Player:
		return "PLAYER"
	case Random:
		return "RANDOM AI"
	case RuleBase:
		return "INIT RULE BASE AI"
	default:
		return strings.ToUpper(string(k))
	}
}

// ParseKind parses a mode name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown AI kind %q", s)
}

// NewAI builds the AI for kind. Player returns a nil AI.
func NewAI(kind Kind, seed int64) (engine.AI, error) {
	switch kind {
	case Player:
		return nil, nil
	case Random:
		return randomai.New(seed), nil
	case RuleBase:
		return rulebase.New(), nil
	default:
		return nil, fmt.Errorf("unknown AI kind %q", string(kind))
	}
}
