// Package gamma adapts the pipeline's external tool ports to the GAMMA
// processing commands, invoked as subprocesses with an explicit working
// directory.
package gamma

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/geosar-labs/stackrtc/internal/domain"
)

// External command names. These are expected on PATH in a GAMMA
// processing environment.
const (
	cmdMultilook     = "ingest_S1_granule"
	cmdCreateDiffPar = "create_diff_par"
	cmdInitOffset    = "init_offsetm"
	cmdMatchOffsets  = "offset_pwrm"
	cmdFitOffsets    = "offset_fitm"
	cmdRTC           = "rtc_sentinel"
)

// Tool runs the GAMMA toolchain. It implements ports.Ingestor,
// ports.OffsetTool and ports.ProductGenerator.
type Tool struct {
	log zerolog.Logger

	// SNRThreshold is the minimum correlation SNR a multi-patch match
	// must reach to take part in the polynomial fit.
	SNRThreshold float64
}

// DefaultSNRThreshold matches the threshold in the estimator-option
// template.
const DefaultSNRThreshold = 7.0

// New returns a Tool logging through the given logger.
func New(log zerolog.Logger) *Tool {
	return &Tool{log: log, SNRThreshold: DefaultSNRThreshold}
}

// run executes one external command in workDir, streaming its output
// through the logger. A non-zero exit is returned as an error carrying
// the command name.
func (t *Tool) run(ctx context.Context, workDir string, stdin io.Reader, name string, args ...string) error {
	t.log.Info().Str("cmd", name).Strs("args", args).Str("dir", workDir).Msg("running external tool")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir
	cmd.Stdin = stdin

	out := toolLogWriter{log: t.log.With().Str("cmd", name).Logger()}
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// toolLogWriter forwards subprocess output lines to zerolog at debug
// level.
type toolLogWriter struct {
	log zerolog.Logger
}

func (w toolLogWriter) Write(p []byte) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(p))
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			w.log.Debug().Msg(line)
		}
	}
	return len(p), nil
}

// Multilook implements ports.Ingestor.
func (t *Tool) Multilook(ctx context.Context, workDir, sceneDir, polarization string, lookFactor float64, outPath string) error {
	return t.run(ctx, workDir, nil, cmdMultilook,
		sceneDir, polarization, strconv.FormatFloat(lookFactor, 'g', -1, 64), outPath)
}

// CreatePairParams implements ports.OffsetTool. The option template is
// fed to the tool's interactive prompts on stdin.
func (t *Tool) CreatePairParams(ctx context.Context, workDir, parA, parB, diffPar, templatePath string) error {
	tpl, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("open estimator template: %w", err)
	}
	defer tpl.Close()
	return t.run(ctx, workDir, tpl, cmdCreateDiffPar, parA, parB, diffPar, "1")
}

// InitOffset implements ports.OffsetTool. Failure is reported as
// domain.ErrOffsetEstimation so callers can fall back to the
// multi-patch search.
func (t *Tool) InitOffset(ctx context.Context, workDir, mliA, mliB, diffPar string) error {
	if err := t.run(ctx, workDir, nil, cmdInitOffset, mliA, mliB, diffPar); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrOffsetEstimation, err)
	}
	return nil
}

// MatchOffsets implements ports.OffsetTool.
func (t *Tool) MatchOffsets(ctx context.Context, workDir, mliA, mliB, diffPar, offsPath, snrPath string) error {
	return t.run(ctx, workDir, nil, cmdMatchOffsets, mliA, mliB, diffPar, offsPath, snrPath)
}

// FitOffsets implements ports.OffsetTool. Candidate matches are
// screened against the SNR threshold before the fit runs; with no
// viable patch there is nothing to fit and the pair is unrecoverable.
func (t *Tool) FitOffsets(ctx context.Context, workDir, offsPath, snrPath, diffPar, culledPath string) error {
	points, err := readMatchPoints(offsPath, snrPath)
	if err != nil {
		return err
	}
	summary := summarize(points, t.SNRThreshold)
	t.log.Info().
		Int("candidates", len(points)).
		Int("viable", summary.Viable).
		Float64("snr_mean", summary.Mean).
		Float64("snr_stddev", summary.StdDev).
		Float64("threshold", t.SNRThreshold).
		Msg("correlation match points")

	if summary.Viable == 0 {
		return fmt.Errorf("%w: %d candidates below threshold %.1f",
			domain.ErrInsufficientSNR, len(points), t.SNRThreshold)
	}
	return t.run(ctx, workDir, nil, cmdFitOffsets, offsPath, snrPath, diffPar, culledPath)
}

// Generate implements ports.ProductGenerator, mirroring the RTC driver
// invocation used for stack processing: DEM matching on, gamma0 power
// products, single-term offsets, co-polarized channel only.
func (t *Tool) Generate(ctx context.Context, workDir, scene string, lookFactor int, stackPar string) error {
	args := []string{
		"--res-matching",
		"--gamma0",
		"--power",
		"--looks", strconv.Itoa(lookFactor),
		"--terms", "1",
		"--no-cross-pol",
	}
	if stackPar != "" {
		args = append(args, "--stack", stackPar)
	}
	args = append(args, scene)
	return t.run(ctx, workDir, nil, cmdRTC, args...)
}
