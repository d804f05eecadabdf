// Command tiledemo displays a tile map with pan and zoom, a minimap and a frame
// time gauge.
//
// Controls: arrows or WASD pan, mouse wheel zooms, right drag pans, left click
// rotates a tile, Home resets the view, F1 toggles the gauge, P logs frame
// stats and Escape quits.
//
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/db47h/ofs"
	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/app"
	"github.com/db47h/tilebatch/asset"
	"github.com/pkg/errors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tiledemo: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := defaultConfig()
	var (
		cfgFile  = flag.String("config", "", "TOML configuration file")
		mapName  = flag.String("map", "", "map to open, relative to the maps directory")
		logLevel = flag.String("log", "", "log level: debug, info, warn or error")
		vsync    = flag.Int("vsync", -1, "swap interval; 0 disables vsync")
		full     = flag.Bool("fullscreen", false, "full screen mode")
	)
	flag.Parse()

	if *cfgFile != "" {
		f, err := os.Open(*cfgFile)
		if err != nil {
			return err
		}
		err = decodeConfig(f, &cfg)
		f.Close()
		if err != nil {
			return errors.Wrap(err, *cfgFile)
		}
	}
	if *mapName != "" {
		cfg.Map = *mapName
	}
	if *logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			return err
		}
	}
	if *vsync >= 0 {
		cfg.VSync = *vsync
	}
	if *full {
		cfg.FullScreen = true
	}

	tilebatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	var ovl ofs.Overlay
	if err := ovl.Add(false, cfg.Assets...); err != nil {
		return errors.Wrap(err, "asset directories")
	}
	mgr := asset.NewManager(&ovl, asset.MapPath("maps"), asset.ThemePath("themes"), asset.FilePath("."))
	defer mgr.Close()

	rc, n := mgr.Preload([]asset.Asset{asset.Map(cfg.Map), asset.Theme(cfg.Theme)}, false)
	tilebatch.Logger().Debug("preloading assets", "count", n)
	if err := asset.Wait(rc); err != nil {
		return err
	}
	m, err := mgr.Map(cfg.Map)
	if err != nil {
		return err
	}
	theme, err := mgr.Theme(cfg.Theme)
	if err != nil {
		return err
	}

	opts := []app.WindowOption{
		app.Title("tiledemo - " + m.Name),
		app.Size(cfg.Width, cfg.Height),
		app.VSync(cfg.VSync),
	}
	if cfg.FullScreen {
		opts = append(opts, app.FullScreen())
	}
	return app.Main(&demo{m: m, theme: theme}, opts...)
}
