package http

import (
	"net/http"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
	"github.com/Amey2003/excel-issue-tracker/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// DashboardHandler serves the dashboard views as JSON
type DashboardHandler struct {
	dashboard interfaces.Dashboard
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard interfaces.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

type snapshotMeta struct {
	SnapshotID types.SnapshotID `json:"snapshotId"`
	Source     string           `json:"source"`
	FetchedAt  time.Time        `json:"fetchedAt"`
}

func metaOf(s *model.Snapshot) snapshotMeta {
	return snapshotMeta{SnapshotID: s.ID, Source: s.Source, FetchedAt: s.FetchedAt}
}

type dashboardResponse struct {
	snapshotMeta
	Dashboard *model.Dashboard `json:"dashboard"`
}

type issuesResponse struct {
	snapshotMeta
	Issues []model.NormalizedIssue `json:"issues"`
}

type developerMatrixResponse struct {
	Date   string             `json:"date"`
	Matrix *model.PivotMatrix `json:"matrix"`
}

type datesResponse struct {
	Dates []string `json:"dates"`
}

// HandleDashboard returns every view of the current snapshot
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dashboardResponse{
		snapshotMeta: metaOf(snapshot),
		Dashboard:    snapshot.Dashboard,
	})
}

// HandleIssues returns the normalized issues of the current snapshot
func (h *DashboardHandler) HandleIssues(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	issues := snapshot.Issues
	if issues == nil {
		issues = []model.NormalizedIssue{}
	}
	writeJSON(w, r, http.StatusOK, issuesResponse{
		snapshotMeta: metaOf(snapshot),
		Issues:       issues,
	})
}

// HandleDeveloperMatrix returns the developer matrix for ?date=YYYY-MM-DD.
// A missing date or "all" returns the unfiltered matrix.
func (h *DashboardHandler) HandleDeveloperMatrix(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	matrix, err := h.dashboard.DeveloperMatrix(r.Context(), date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if date == "" {
		date = "all"
	}
	writeJSON(w, r, http.StatusOK, developerMatrixResponse{Date: date, Matrix: matrix})
}

// HandleDates returns the options of the developer matrix date filter
func (h *DashboardHandler) HandleDates(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	dates := snapshot.Dashboard.FoundDates
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, r, http.StatusOK, datesResponse{Dates: dates})
}

// HandleRefresh triggers a refresh and returns the new dashboard
func (h *DashboardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.Refresh(r.Context())
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "refresh failed"))
		return
	}
	writeJSON(w, r, http.StatusOK, dashboardResponse{
		snapshotMeta: metaOf(snapshot),
		Dashboard:    snapshot.Dashboard,
	})
}

// writeError writes {"error": message} with the status mapped from err
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}
	writeJSON(w, r, apperr.StatusCode(err), map[string]string{
		"error": message,
	})
}
