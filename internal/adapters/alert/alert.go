// Package alert implements the best-effort local notice port. Notices are
// toast-level messages; this implementation surfaces them as structured log
// lines, and failures are never reported back to callers.
package alert

import (
	"log/slog"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

type logAlerter struct {
	logger *slog.Logger
}

// NewLogAlerter returns an Alerter that writes notices to the logger.
func NewLogAlerter(logger *slog.Logger) domain.Alerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &logAlerter{logger: logger}
}

func (a *logAlerter) Alert(title, body string) {
	a.logger.Info("notice", "title", title, "body", body)
}
