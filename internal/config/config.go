// Package config loads a RunConfig from a YAML or TOML file via viper,
// in the unmarshal-by-section idiom the inmaputil command tree uses for
// its own Cfg wrapper around *viper.Viper.
package config

import (
	"fmt"

	"github.com/lnashier/viper"
)

// PPMTunables carries the three PPM reconstruction tunables:
// PPM_ALWAYS_LIM, PPM_STRICT_LIM, WEIRD_PPM.
type PPMTunables struct {
	AlwaysLim bool `mapstructure:"always_lim"`
	StrictLim bool `mapstructure:"strict_lim"`
	WeirdPPM  bool `mapstructure:"weird_ppm"`
}

// BroadcastConfig configures the WebSocket image broadcaster.
type BroadcastConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Addr       string  `mapstructure:"addr"`
	MaxClients int     `mapstructure:"max_clients"`
	MaxFPS     float64 `mapstructure:"max_fps"`
	ClipMin    float64 `mapstructure:"clip_min"`
	ClipMax    float64 `mapstructure:"clip_max"`
}

// RunConfig is the full set of knobs a run file supplies, unmarshalled
// from the top-level keys of a YAML/TOML config file plus its "ppm",
// "params" and "broadcast" sections.
type RunConfig struct {
	NThread int `mapstructure:"nthread"`

	NU      int `mapstructure:"nu"`
	NV      int `mapstructure:"nv"`
	NGhost  int `mapstructure:"nghost"`
	NScalar int `mapstructure:"nscalar"`

	UMin float64 `mapstructure:"umin"`
	UMax float64 `mapstructure:"umax"`
	VMin float64 `mapstructure:"vmin"`
	VMax float64 `mapstructure:"vmax"`

	Gamma      float64 `mapstructure:"gamma"`
	RhoFloor   float64 `mapstructure:"rho_floor"`
	PressFloor float64 `mapstructure:"press_floor"`

	ReconstructOrder int         `mapstructure:"reconstruct_order"`
	PPM              PPMTunables `mapstructure:"ppm"`

	Scheme   string  `mapstructure:"scheme"`
	CFLNum   float64 `mapstructure:"cfl_num"`
	MaxEpoch int     `mapstructure:"max_epoch"`
	MaxOut   int     `mapstructure:"max_out"`
	OutTf    float64 `mapstructure:"out_tf"`

	Problem string                 `mapstructure:"problem"`
	Params  map[string]interface{} `mapstructure:"params"`

	Broadcast BroadcastConfig `mapstructure:"broadcast"`
}

// Load reads path into a fresh viper instance and unmarshals it into a
// RunConfig, mirroring inmaputil/config.go's "configure viper, then
// decode by section" shape. The format (YAML, TOML, JSON, ...) is
// inferred from the file extension by viper itself.
func Load(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("euler2d: reading config %s: %w", path, err)
	}

	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("euler2d: decoding config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("nthread", 1)
	v.SetDefault("nghost", 4)
	v.SetDefault("nscalar", 0)
	v.SetDefault("gamma", 1.4)
	v.SetDefault("rho_floor", 1e-8)
	v.SetDefault("press_floor", 1e-8)
	v.SetDefault("reconstruct_order", 3)
	v.SetDefault("scheme", "ssprk3")
	v.SetDefault("cfl_num", 0.43)
	v.SetDefault("max_epoch", 1)
	v.SetDefault("max_out", 1)
	v.SetDefault("out_tf", 1.0)
	v.SetDefault("broadcast.addr", ":9743")
	v.SetDefault("broadcast.max_clients", 2)
	v.SetDefault("broadcast.max_fps", 24.0)
}

// Validate rejects configs that would make NewGrid or the Integrator
// panic, turning a panicking core into a clean, fatal startup error at
// the config boundary instead.
func (c *RunConfig) Validate() error {
	if c.NThread < 1 {
		return fmt.Errorf("euler2d: nthread must be >= 1, got %d", c.NThread)
	}
	if c.NGhost < 3 {
		return fmt.Errorf("euler2d: nghost must be >= 3 for PPM, got %d", c.NGhost)
	}
	if c.ReconstructOrder < 1 || c.ReconstructOrder > 3 {
		return fmt.Errorf("euler2d: reconstruct_order must be in {1,2,3}, got %d", c.ReconstructOrder)
	}
	if c.NU < c.NThread {
		return fmt.Errorf("euler2d: nu (%d) must be >= nthread (%d)", c.NU, c.NThread)
	}
	if c.Problem == "" {
		return fmt.Errorf("euler2d: problem name is required")
	}
	switch c.Scheme {
	case "euler", "rk2", "ssprk3":
	default:
		return fmt.Errorf("euler2d: unknown scheme %q", c.Scheme)
	}
	return nil
}
