package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// envConfig mirrors Config for the STACKRTC_* environment layer.
type envConfig struct {
	WorkDir      string  `env:"STACKRTC_WORK_DIR"`
	ProductDir   string  `env:"STACKRTC_PRODUCT_DIR"`
	Resolution   float64 `env:"STACKRTC_RESOLUTION"`
	SnapInterval float64 `env:"STACKRTC_SNAP_INTERVAL"`
	SNRThreshold float64 `env:"STACKRTC_SNR_THRESHOLD"`
	Workers      int     `env:"STACKRTC_WORKERS"`
	Watch        *bool   `env:"STACKRTC_WATCH"`
	STACSidecar  *bool   `env:"STACKRTC_STAC"`
}

// ApplyEnvConfig applies configuration from STACKRTC_* environment
// variables. Environment values override the config file but lose to
// explicitly set flags (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	s := newConfigSetter(changed)
	s.setString("workdir", ec.WorkDir, &cfg.WorkDir)
	s.setString("product-dir", ec.ProductDir, &cfg.ProductDir)
	s.setFloat("res", ec.Resolution, &cfg.Resolution)
	s.setFloat("snap", ec.SnapInterval, &cfg.SnapInterval)
	s.setFloat("snr-threshold", ec.SNRThreshold, &cfg.SNRThreshold)
	s.setInt("workers", ec.Workers, &cfg.Workers)
	s.setBool("watch", ec.Watch, &cfg.Watch)
	s.setBool("stac", ec.STACSidecar, &cfg.STACSidecar)
	return nil
}
