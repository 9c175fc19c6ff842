package common

import (
	"strings"

	"github.com/op/go-logging"
)

// Tracer writes Minio's HTTP trace output to our log at DEBUG level.
// The context turns it on for the S3 data source when LOG_LEVEL is
// DEBUG.
type Tracer struct {
	logger *logging.Logger
}

func NewTracer(logger *logging.Logger) *Tracer {
	return &Tracer{
		logger: logger,
	}
}

func (t *Tracer) Write(p []byte) (n int, err error) {
	if text := strings.TrimSpace(string(p)); text != "" {
		t.logger.Debug(text)
	}
	return len(p), nil
}
