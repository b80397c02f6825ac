package utils

import "errors"

var (
	ErrSessionNotFound   = errors.New("planner session not found")
	ErrCityNotFound      = errors.New("city not found")
	ErrAttractionMissing = errors.New("attraction not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotReady          = errors.New("trip request not ready")
	ErrSubmitInFlight    = errors.New("a plan request is already in flight")
	ErrPlanNotCached     = errors.New("no plan cached for this session")
	ErrDatabaseError     = errors.New("database error")
)

// PlannerServiceError carries the user-facing message for a failed call to
// the external itinerary service: the best-effort parse of the service's
// error detail, or a generic fallback.
type PlannerServiceError struct {
	Detail string
}

func (e *PlannerServiceError) Error() string {
	if e.Detail == "" {
		return "The trip planner is unavailable right now. Please try again."
	}
	return e.Detail
}
