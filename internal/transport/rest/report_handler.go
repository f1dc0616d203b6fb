package rest

import (
	"net/http"

	"herald/internal/core/report"
)

type ReportHandler struct {
	reporter *report.Reporter
}

func NewReportHandler(reporter *report.Reporter) *ReportHandler {
	return &ReportHandler{reporter: reporter}
}

func (h *ReportHandler) Index(w http.ResponseWriter, r *http.Request) {
	reports := h.reporter.Recent()
	for i := range reports {
		reports[i].Stack = ""
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    reports,
	})
}
