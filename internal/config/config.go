package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Render  RenderConfig  `toml:"render"`
	Output  OutputConfig  `toml:"output"`
	Seed    SeedConfig    `toml:"seed"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	MaxEntities  int      `toml:"max_entities"`
	GridWidth    int      `toml:"grid_width"`
	GridHeight   int      `toml:"grid_height"`
	TickInterval Duration `toml:"tick_interval"`
	MaxTicks     uint64   `toml:"max_ticks"` // 0 = run forever
	Digest       bool     `toml:"digest"`    // emit a state hash each tick
}

type RenderConfig struct {
	Background string `toml:"background"` // single character
	Foreground string `toml:"foreground"` // single character
	Separator  string `toml:"separator"`
}

type OutputConfig struct {
	Target    string `toml:"target"`     // "stdout", "log" or "screen"
	Charset   string `toml:"charset"`    // stdout only: "utf-8", "cp437", "big5", ...
	MirrorLog bool   `toml:"mirror_log"` // stdout only: also log every line
}

type SeedConfig struct {
	File   string `toml:"file"`   // YAML population
	Script string `toml:"script"` // Lua population script
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr, or discarded for the screen target
}

// Duration decodes TOML strings like "1s" or "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// MaxGridSide bounds each grid dimension; the render frame holds width*height runes.
const MaxGridSide = 1024

// Validate checks capacity, grid, marker and output settings.
func (c *Config) Validate() error {
	switch {
	case c.Sim.MaxEntities <= 0 || c.Sim.MaxEntities > 1<<16:
		return fmt.Errorf("sim.max_entities must be in 1..65536, got %d", c.Sim.MaxEntities)
	case c.Sim.GridWidth <= 0 || c.Sim.GridHeight <= 0 ||
		c.Sim.GridWidth > MaxGridSide || c.Sim.GridHeight > MaxGridSide:
		return fmt.Errorf("sim grid sides must be in 1..%d, got %dx%d", MaxGridSide, c.Sim.GridWidth, c.Sim.GridHeight)
	case c.Sim.TickInterval.Duration <= 0:
		return fmt.Errorf("sim.tick_interval must be positive, got %s", c.Sim.TickInterval)
	case len([]rune(c.Render.Background)) != 1 || len([]rune(c.Render.Foreground)) != 1:
		return errors.New("render.background and render.foreground must be single characters")
	}
	switch c.Output.Target {
	case "stdout":
	case "log", "screen":
		if !isUTF8(c.Output.Charset) {
			return fmt.Errorf("output.charset %q only applies to stdout; %s output is always utf-8", c.Output.Charset, c.Output.Target)
		}
		if c.Output.MirrorLog {
			return fmt.Errorf("output.mirror_log only applies to stdout")
		}
	default:
		return fmt.Errorf("output.target %q is not one of stdout, log, screen", c.Output.Target)
	}
	return nil
}

func isUTF8(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Defaults mirror the reference deployment: a 10x10 grid ticking once a second.
func Defaults() *Config {
	return &Config{
		Sim: SimConfig{
			MaxEntities:  64,
			GridWidth:    10,
			GridHeight:   10,
			TickInterval: Duration{time.Second},
		},
		Render: RenderConfig{
			Background: ".",
			Foreground: "#",
			Separator:  "----------",
		},
		Output: OutputConfig{
			Target:  "stdout",
			Charset: "utf-8",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
