// Package config loads the optional mandelband configuration file.
//
// The file lives at ~/.config/mandelband/config.toml (or under
// $XDG_CONFIG_HOME) and supplies defaults for the render command plus
// user-defined viewport presets that are merged with the built-in regions:
//
//	workers = 4
//	format = "pgm"
//
//	[regions.my-spot]
//	name = "My Spot"
//	upper_left = "-0.7440,0.1315"
//	lower_right = "-0.7433,0.1308"
//
// A missing file is not an error; it yields the defaults.
package config

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
	"github.com/mandelband/mandelband/pkg/render"
	"github.com/mandelband/mandelband/pkg/sink"
)

// Config holds the file-configurable defaults.
type Config struct {
	// Workers is the default number of parallel render bands.
	Workers int `toml:"workers"`

	// Format is the default output format ("png" or "pgm").
	Format string `toml:"format"`

	// Regions are user-defined viewport presets, keyed by slug.
	Regions map[string]RegionDef `toml:"regions"`

	// regions are the parsed user presets, built during Load.
	regions map[string]mandel.Region
}

// RegionDef is a viewport preset as written in the config file. The corner
// points use the same "RE,IM" notation as the CLI flags.
type RegionDef struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	UpperLeft   string `toml:"upper_left"`
	LowerRight  string `toml:"lower_right"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Workers: render.DefaultWorkers,
		Format:  sink.FormatPNG,
	}
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(path); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Workers <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: workers must be positive, got %d", path, c.Workers)
	}
	if !sink.ValidFormats[c.Format] {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown format %q", path, c.Format)
	}

	c.regions = make(map[string]mandel.Region, len(c.Regions))
	for slug, def := range c.Regions {
		ul, err := mandel.ParsePoint(def.UpperLeft)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s: region %q upper_left", path, slug)
		}
		lr, err := mandel.ParsePoint(def.LowerRight)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s: region %q lower_right", path, slug)
		}
		name := def.Name
		if name == "" {
			name = slug
		}
		c.regions[slug] = mandel.Region{
			Slug:        slug,
			Name:        name,
			Description: def.Description,
			Viewport:    mandel.Viewport{UpperLeft: ul, LowerRight: lr},
		}
	}
	return nil
}

// Region resolves a preset slug, checking user-defined regions first and
// falling back to the built-in landmarks.
func (c Config) Region(slug string) (mandel.Region, bool) {
	if r, ok := c.regions[slug]; ok {
		return r, true
	}
	return mandel.LookupRegion(slug)
}

// AllRegions returns the built-in and user-defined presets merged, sorted by
// slug. A user preset with the same slug as a built-in one shadows it.
func (c Config) AllRegions() []mandel.Region {
	merged := make(map[string]mandel.Region)
	for _, r := range mandel.Regions() {
		merged[r.Slug] = r
	}
	for slug, r := range c.regions {
		merged[slug] = r
	}

	out := make([]mandel.Region, 0, len(merged))
	for _, r := range merged {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
