package logger

import "go.uber.org/zap"

// New builds the process-wide sugared logger. Callers own Sync.
func New() (*zap.SugaredLogger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
