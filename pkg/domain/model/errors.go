package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidShape        = goerr.New("input is not an array of issue records")
	ErrSnapshotNotFound    = goerr.New("no snapshot has been rendered yet")
	ErrSourceNotConfigured = goerr.New("issue source is not configured")
	ErrAcquisition         = goerr.New("failed to acquire issue data")
	ErrInvalidDayKey       = goerr.New("invalid day key")
)
