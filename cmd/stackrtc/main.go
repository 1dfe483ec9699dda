package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/geosar-labs/stackrtc"
	"github.com/geosar-labs/stackrtc/internal/cliconfig"
)

const helpDescription = `
Co-register a time-ordered stack of Sentinel-1 GRD scenes and generate
consistently aligned RTC products.

Each scene is matched against its chronological predecessor; the
pairwise offsets are accumulated into a single correction relative to
the first scene, so every product in the stack shares one geometry.
Intermediate artifacts are kept in the working directory and reused on
re-runs, so an interrupted stack can be resumed in place.
`

var exampleUsage = strings.TrimSpace(`
  stackrtc S1A_*_20200101*.zip S1A_*_20200113*.zip S1A_*_20200125*.zip
  stackrtc --res 10 --workdir /data/stack scenes/*.SAFE
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "stackrtc [scenes...]",
		Short:   "Co-register a stack of SAR scenes for RTC product generation",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags so file and env values never
			// override what was passed on the command line.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			cfg.Scenes = args
			if err := cfg.Validate(); err != nil {
				return err
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			return stackrtc.Run(ctx, cfg)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.stackrtc/config.toml)")
	root.Flags().StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir, "working directory for intermediate artifacts")
	root.Flags().StringVar(&cfg.ProductDir, "product-dir", cfg.ProductDir, "shared output directory (default: <workdir>/RTC_PRODUCTS)")
	root.Flags().Float64Var(&cfg.Resolution, "res", cfg.Resolution, "output pixel spacing in meters")
	root.Flags().Float64Var(&cfg.SnapInterval, "snap", cfg.SnapInterval, "post spacing grid extents snap to (default: --res)")
	root.Flags().Float64Var(&cfg.SNRThreshold, "snr-threshold", cfg.SNRThreshold, "minimum correlation SNR for multi-patch matches")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers for grid generation and ingestion")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "log intermediate artifacts as external tools create them")
	root.Flags().BoolVar(&cfg.STACSidecar, "stac", cfg.STACSidecar, "write a STAC Item sidecar per collected product")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("stackrtc")
		os.Exit(1)
	}
}
