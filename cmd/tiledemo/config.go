package main

import (
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// config is the demo configuration. It is read from an optional TOML file,
// then overridden by command line flags.
//
//	width = 1280
//	height = 720
//	fullscreen = false
//	vsync = 1
//	log_level = "info"
//	assets = ["assets", "cmd/tiledemo/assets"]
//	map = "sample.toml"
//	theme = "default.toml"
//
type config struct {
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	FullScreen bool       `toml:"fullscreen"`
	VSync      int        `toml:"vsync"`
	LogLevel   slog.Level `toml:"log_level"`
	Assets     []string   `toml:"assets"`
	Map        string     `toml:"map"`
	Theme      string     `toml:"theme"`
}

func defaultConfig() config {
	return config{
		Width:    1280,
		Height:   720,
		VSync:    1,
		LogLevel: slog.LevelInfo,
		Assets:   []string{"assets", "cmd/tiledemo/assets"},
		Map:      "sample.toml",
		Theme:    "default.toml",
	}
}

// decodeConfig reads a config file from r. Entries missing from the file keep
// the value they have in cfg.
//
func decodeConfig(r io.Reader, cfg *config) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		return errors.Wrap(err, "decode config")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Assets) == 0 {
		return errors.New("no asset directories")
	}
	return nil
}
