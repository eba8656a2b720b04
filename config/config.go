// Settings for the topocheck command: how synthetic datasets are generated and
// how checks are drawn. Everything has a default, and a YAML file can override
// any subset of it.
package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A closed interval. Values are drawn uniformly from [Min, Max].
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Config struct {
	Synth  Synth  `yaml:"synth"`
	Render Render `yaml:"render"`
}

// Parameters for synthetic datasets. The second plane is the first plane
// pushed through a random affine transform, plus per-point Gaussian noise.
type Synth struct {
	Count  Range   `yaml:"count"`  // Number of points
	Extent float64 `yaml:"extent"` // Source points are uniform in [0, Extent]²

	Scale       Range   `yaml:"scale"`       // Independent X and Y scale
	Shear       Range   `yaml:"shear"`       // X shear by Y
	Rotation    Range   `yaml:"rotation"`    // Radians
	Translation Range   `yaml:"translation"` // Independent X and Y offset
	FlipY       float64 `yaml:"flip_y"`      // Probability of mirroring Y
	Noise       Range   `yaml:"noise"`       // Standard deviation of positional noise

	Seed int64 `yaml:"seed"` // Zero means seed from the clock
}

type Render struct {
	Size        int     `yaml:"size"`    // Width and height of each plane's panel, in pixels
	Padding     float64 `yaml:"padding"` // Pixels around each panel
	Margin      float64 `yaml:"margin"`  // Extra room around the points, as a fraction of their extent
	PointRadius float64 `yaml:"point_radius"`
	MarkRadius  float64 `yaml:"mark_radius"` // Radius of crossing markers
	LineWidth   float64 `yaml:"line_width"`

	Background string `yaml:"background"`
	Point      string `yaml:"point"`
	Edge       string `yaml:"edge"`
	Mark       string `yaml:"mark"`
}

// Defaults follow the generator the datasets were first made with: a few
// hundred points, modest scale and shear, small noise.
func Default() Config {
	return Config{
		Synth: Synth{
			Count:       Range{400, 600},
			Extent:      1000,
			Scale:       Range{0.5, 2},
			Shear:       Range{-0.5, 0.5},
			Rotation:    Range{0, 2 * math.Pi},
			Translation: Range{-200, 200},
			FlipY:       0.5,
			Noise:       Range{1, 5},
		},
		Render: Render{
			Size:        600,
			Padding:     20,
			Margin:      0.05,
			PointRadius: 2.5,
			MarkRadius:  7,
			LineWidth:   1,
			Background:  "#ffffff",
			Point:       "#3498db",
			Edge:        "#2c3e50",
			Mark:        "#e74c3c",
		},
	}
}

// Read a YAML file on top of the defaults. Keys missing from the file keep
// their default values, and unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document is fine and means "all defaults"
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	s := cfg.Synth
	for name, r := range map[string]Range{
		"synth.count":       s.Count,
		"synth.scale":       s.Scale,
		"synth.shear":       s.Shear,
		"synth.rotation":    s.Rotation,
		"synth.translation": s.Translation,
		"synth.noise":       s.Noise,
	} {
		if r.Min > r.Max {
			return errors.Errorf("%s: min %g is greater than max %g", name, r.Min, r.Max)
		}
	}
	if s.Count.Min < 3 {
		return errors.Errorf("synth.count: need at least 3 points, got min %g", s.Count.Min)
	}
	if s.Extent <= 0 {
		return errors.Errorf("synth.extent must be positive, got %g", s.Extent)
	}
	if s.FlipY < 0 || s.FlipY > 1 {
		return errors.Errorf("synth.flip_y is a probability, got %g", s.FlipY)
	}
	if s.Noise.Min < 0 {
		return errors.Errorf("synth.noise must not be negative, got min %g", s.Noise.Min)
	}

	r := cfg.Render
	if r.Size <= 0 {
		return errors.Errorf("render.size must be positive, got %d", r.Size)
	}
	if r.Padding < 0 || r.Margin < 0 || r.PointRadius < 0 || r.MarkRadius < 0 || r.LineWidth <= 0 {
		return errors.New("render: padding, margin and radii must not be negative, and line_width must be positive")
	}
	return nil
}

// Interpolate within the range. t is expected in [0, 1).
func (r Range) At(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}
