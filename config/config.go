// Package config loads run settings from a Starlark script.
//
// A script assigns any of the lower case settings as globals:
//
//	width = 40             # CRT pixels per row
//	height = 6             # CRT rows
//	lit = "#"              # glyph of a lit pixel
//	blank = "."            # glyph of a dark pixel
//	relief_rounds = 20     # keep away rounds with relief
//	rounds = 10000         # keep away rounds without relief
//	knots = 10             # knots of the long rope
//	packet_marker = 4      # start-of-packet marker size
//	message_marker = 14    # start-of-message marker size
//
// The defaults are predeclared in upper case (WIDTH, HEIGHT, ...). Globals
// starting with an underscore are ignored.
package config

import (
	"io"
	"log"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Config holds the settings for a run.
type Config struct {
	Width  int  // CRT pixels per row.
	Height int  // CRT rows.
	Lit    rune // Glyph of a lit pixel.
	Blank  rune // Glyph of a dark pixel.

	ReliefRounds int // Keep away rounds with relief.
	Rounds       int // Keep away rounds without relief.

	Knots         int // Knots of the long rope.
	PacketMarker  int // Start-of-packet marker size.
	MessageMarker int // Start-of-message marker size.
}

// Default returns the settings of the puzzle statements.
func Default() *Config {
	return &Config{
		Width:         40,
		Height:        6,
		Lit:           '#',
		Blank:         '.',
		ReliefRounds:  20,
		Rounds:        10000,
		Knots:         10,
		PacketMarker:  4,
		MessageMarker: 14,
	}
}

// setting binds a script global to a Config field.
type setting struct {
	get func(cfg *Config) starlark.Value
	set func(cfg *Config, value starlark.Value) error
}

func intSetting(field func(cfg *Config) *int) setting {
	return setting{
		get: func(cfg *Config) starlark.Value {
			return starlark.MakeInt(*field(cfg))
		},
		set: func(cfg *Config, value starlark.Value) (err error) {
			if _, ok := value.(starlark.Int); !ok {
				err = ErrValueType
				return
			}
			var v int
			v, err = starlark.AsInt32(value)
			if err != nil || v < 1 {
				err = ErrValueRange
				return
			}
			*field(cfg) = v
			return
		},
	}
}

func glyphSetting(field func(cfg *Config) *rune) setting {
	return setting{
		get: func(cfg *Config) starlark.Value {
			return starlark.String(string(*field(cfg)))
		},
		set: func(cfg *Config, value starlark.Value) (err error) {
			str, ok := starlark.AsString(value)
			if !ok {
				err = ErrValueType
				return
			}
			if utf8.RuneCountInString(str) != 1 {
				err = ErrValueRange
				return
			}
			glyph, _ := utf8.DecodeRuneInString(str)
			*field(cfg) = glyph
			return
		},
	}
}

var settings = map[string]setting{
	"width":          intSetting(func(cfg *Config) *int { return &cfg.Width }),
	"height":         intSetting(func(cfg *Config) *int { return &cfg.Height }),
	"lit":            glyphSetting(func(cfg *Config) *rune { return &cfg.Lit }),
	"blank":          glyphSetting(func(cfg *Config) *rune { return &cfg.Blank }),
	"relief_rounds":  intSetting(func(cfg *Config) *int { return &cfg.ReliefRounds }),
	"rounds":         intSetting(func(cfg *Config) *int { return &cfg.Rounds }),
	"knots":          intSetting(func(cfg *Config) *int { return &cfg.Knots }),
	"packet_marker":  intSetting(func(cfg *Config) *int { return &cfg.PacketMarker }),
	"message_marker": intSetting(func(cfg *Config) *int { return &cfg.MessageMarker }),
}

// Predeclared returns the defaults as Starlark values, keyed by upper case
// setting name.
func (cfg *Config) Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, s := range settings {
		pred[strings.ToUpper(key)] = s.get(cfg)
	}
	return
}

// Load executes a Starlark script and applies its settings over the defaults.
func Load(name string, src io.Reader) (cfg *Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, cfg.Predeclared())
	if err != nil {
		cfg = nil
		return
	}

	for _, key := range slices.Sorted(maps.Keys(globals)) {
		if strings.HasPrefix(key, "_") {
			continue
		}
		s, ok := settings[key]
		if !ok {
			err = &ErrConfig{Key: key, Err: ErrKeyUnknown}
			cfg = nil
			return
		}
		err = s.set(cfg, globals[key])
		if err != nil {
			err = &ErrConfig{Key: key, Err: err}
			cfg = nil
			return
		}
	}

	return
}
