package progress

import (
	"github.com/rdatadao/rdat-registry/internal/domain/config"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// NewProgressSink picks the spinner for interactive runs and a no-op otherwise
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Debug {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
