package transpile

import "go.uber.org/zap"

// NewLogger returns a structured logger writing to path, or a no-op logger
// when path is empty — the same gating the teacher applies to its optional
// debug log file (Options.LogFile). The returned sync func should be
// deferred by the caller.
func NewLogger(path string) (*zap.SugaredLogger, func() error, error) {
	if path == "" {
		logger := zap.NewNop()
		return logger.Sugar(), func() error { return nil }, nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger.Sugar(), logger.Sync, nil
}
