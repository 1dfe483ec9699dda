package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with TOML-friendly optional fields.
type fileConfig struct {
	WorkDir      string  `toml:"work_dir"`
	ProductDir   string  `toml:"product_dir"`
	Resolution   float64 `toml:"resolution"`
	SnapInterval float64 `toml:"snap_interval"`
	SNRThreshold float64 `toml:"snr_threshold"`
	Workers      int     `toml:"workers"`
	Watch        *bool   `toml:"watch"`
	STACSidecar  *bool   `toml:"stac"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("workdir", fc.WorkDir, &cfg.WorkDir)
	s.setString("product-dir", fc.ProductDir, &cfg.ProductDir)
	s.setFloat("res", fc.Resolution, &cfg.Resolution)
	s.setFloat("snap", fc.SnapInterval, &cfg.SnapInterval)
	s.setFloat("snr-threshold", fc.SNRThreshold, &cfg.SNRThreshold)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("stac", fc.STACSidecar, &cfg.STACSidecar)
}
