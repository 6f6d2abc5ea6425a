package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	"github.com/nao1215/inquire"
	"github.com/spf13/pflag"
)

// themeFile is looked up under the XDG config directories when no theme file
// is given explicitly.
var themeFile = filepath.Join("inquire", "theme.toml")

// config holds the showcase settings. Environment variables prefixed with
// INQUIRE_ set the defaults and command line flags override them.
type config struct {
	Theme     string `envconfig:"THEME" default:"default"`
	ThemeFile string `envconfig:"THEME_FILE"`
	PageSize  int    `envconfig:"PAGE_SIZE" default:"10"`
}

func loadConfig(args []string) (config, error) {
	var cfg config
	if err := envconfig.Process("inquire", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	set := pflag.NewFlagSet("showcase", pflag.ContinueOnError)
	set.StringVarP(&cfg.Theme, "theme", "t", cfg.Theme, "Built-in color theme (default, dark, light, accessible, dracula, monokai).")
	set.StringVar(&cfg.ThemeFile, "theme-file", cfg.ThemeFile, "TOML file with a custom color theme.")
	set.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Number of choices shown at once.")
	if err := set.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("page size must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// colorScheme resolves the theme: an explicit theme file first, then a theme
// file in the user's config directory, then a built-in theme by name.
func (c config) colorScheme() (*inquire.ColorScheme, error) {
	if c.ThemeFile != "" {
		return loadThemeFile(c.ThemeFile)
	}

	if path, err := xdg.SearchConfigFile(themeFile); err == nil {
		return loadThemeFile(path)
	}

	scheme, ok := inquire.ThemeByName(c.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", c.Theme)
	}
	return scheme, nil
}

// loadThemeFile reads a theme on top of the default one, so a file only
// needs the colors it changes.
func loadThemeFile(path string) (*inquire.ColorScheme, error) {
	scheme := *inquire.ThemeDefault
	scheme.Name = filepath.Base(path)
	if _, err := toml.DecodeFile(path, &scheme); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("theme file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return &scheme, nil
}
