package config

import "puyoterm/board"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawGhost:        true,
		DrawDeathMark:    true,
		DrawPuyoBG:       false,
		FullWidthLetters: false,
		Colors: ConfigColors{
			Red:        196,
			Green:      46,
			Yellow:     226,
			Blue:       21,
			Purple:     129,
			Garbage:    250,
			Field:      234,
			FieldAlt:   235,
			Wall:       240,
			DeathMark:  124,
			HiddenRows: 232,
		},
		Symbols: ConfigSymbols{
			Puyo:      '●',
			Ghost:     '○',
			Empty:     '·',
			DeathMark: '✕',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Height:       board.DefaultHeight,
			Width:        board.DefaultWidth,
			AI:           "player",
			Seed:         0,
			StepDelayMs:  100,
			ChainDelayMs: 800,
			DebugLog:     false,
		},
	}
}
