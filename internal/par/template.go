package par

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// diffParTemplate answers the interactive prompts of the pair-parameter
// creation tool: title, initial offsets, patch size, number of offset
// measurements, SNR threshold.
//
//go:embed diff_par.in
var diffParTemplate []byte

// TemplateName is the file the estimator-option template is
// materialized as in the working directory.
const TemplateName = "diff_par.in"

// WriteTemplate places the embedded estimator-option template into the
// working directory and returns its path. An existing file is kept
// as-is so operators can tune options between resumed runs.
func WriteTemplate(workDir string) (string, error) {
	path := filepath.Join(workDir, TemplateName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, diffParTemplate, 0o644); err != nil {
		return "", fmt.Errorf("write estimator template: %w", err)
	}
	return path, nil
}
