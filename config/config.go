package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"puyoterm/game"
)

var (
	cfgFile = "puyoterm/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are xterm-256 palette indices.
type ConfigColors struct {
	Red        int `json:"red"`
	Green      int `json:"green"`
	Yellow     int `json:"yellow"`
	Blue       int `json:"blue"`
	Purple     int `json:"purple"`
	Garbage    int `json:"garbage"`
	Field      int `json:"field"`
	FieldAlt   int `json:"field_alt"`
	Wall       int `json:"wall"`
	DeathMark  int `json:"death_mark"`
	HiddenRows int `json:"hidden_rows"`
}

type ConfigSymbols struct {
	Puyo      rune `json:"puyo"`
	Ghost     rune `json:"ghost"`
	Empty     rune `json:"empty"`
	DeathMark rune `json:"death_mark"`
}

type Theme struct {
	DrawGhost        bool          `json:"draw_ghost"`
	DrawDeathMark    bool          `json:"draw_death_mark"`
	DrawPuyoBG       bool          `json:"draw_puyo_bg"`
	FullWidthLetters bool          `json:"fullwidth_letters"`
	Colors           ConfigColors  `json:"colors"`
	Symbols          ConfigSymbols `json:"symbols"`
}

// GameConfig holds session defaults.
type GameConfig struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	AI     string `json:"ai"`
	// Seed 0 deals from the clock.
	Seed         int64 `json:"seed"`
	StepDelayMs  int   `json:"step_delay_ms"`
	ChainDelayMs int   `json:"chain_delay_ms"`
	DebugLog     bool  `json:"debug_log"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

// InitConfig loads the config file if one exists and validates the result.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Puyo, c.Theme.Symbols.Ghost, c.Theme.Symbols.Empty, c.Theme.Symbols.DeathMark} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.Width < 3 {
		return &InvalidConfig{fmt.Sprintf("field width %d is below 3", c.Game.Width)}
	}
	if c.Game.Height < 4 {
		return &InvalidConfig{fmt.Sprintf("field height %d is below 4", c.Game.Height)}
	}
	if _, err := game.ParseKind(c.Game.AI); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Game.StepDelayMs < 0 || c.Game.ChainDelayMs < 0 {
		return &InvalidConfig{"delays must not be negative"}
	}
	return nil
}

// Path returns where Save writes the config file.
func Path() (string, error) {
	return xdg.ConfigFile(cfgFile)
}

func (c *Config) Save() error {
	absPath, err := Path()
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}
