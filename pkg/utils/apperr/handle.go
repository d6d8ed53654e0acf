package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// StatusCode maps an application error to the HTTP status it is reported with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidDayKey):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidShape):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrAcquisition), errors.Is(err, model.ErrSourceNotConfigured):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Handle logs err. Errors caused by the caller or by missing data are
// logged as warnings, everything else as errors.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	if StatusCode(err) < http.StatusInternalServerError {
		logger.Warn("application error", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
