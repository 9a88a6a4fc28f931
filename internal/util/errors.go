package util

import "errors"

var (
	ErrSessionNotFound  = errors.New("assessment session not found")
	ErrSessionConflict  = errors.New("assessment session was modified concurrently")
	ErrRecordNotFound   = errors.New("survey record not found")
	ErrLedgerDisabled   = errors.New("submission ledger is disabled")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidRole      = errors.New("role must be teacher or parent")
	ErrUpstreamRejected = errors.New("survey api rejected the request")
)
