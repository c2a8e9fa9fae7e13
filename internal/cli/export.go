package cli

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ygorazambuja/pubspec-platform/pkg/analysis"
)

// jsonReport wraps one analysis run for machine consumption, tagging it with
// a run id and timestamp so downstream tooling can correlate reports.
type jsonReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Project     string    `json:"project,omitempty"`
	*analysis.Analysis
}

// writeReport serializes the analysis as JSON to path, or to stdout when
// path is empty.
func writeReport(a *analysis.Analysis, project, path string, logger *log.Logger) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	report := jsonReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Project:     project,
		Analysis:    a,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote report to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// usable as an io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
