package workers

import (
	"context"
	"time"

	"herald/internal/core/report"
	"herald/internal/logger"
)

type ReportPruneWorker struct {
	reporter *report.Reporter
	log      logger.Logger
}

func NewReportPruneWorker(reporter *report.Reporter, log logger.Logger) *ReportPruneWorker {
	return &ReportPruneWorker{
		reporter: reporter,
		log:      log,
	}
}

func (w *ReportPruneWorker) Name() string {
	return "report_prune"
}

func (w *ReportPruneWorker) Run(_ context.Context) error {
	if removed := w.reporter.Prune(time.Now().UTC()); removed > 0 {
		w.log.Info("pruned error reports", "count", removed)
	}
	return nil
}
