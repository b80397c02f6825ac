package triprequest

import (
	"errors"

	"alpinepulse/internal/planner/interests"
)

// ErrNotReady is returned when a request build is attempted before every
// constraint holds; callers must not submit.
var ErrNotReady = errors.New("trip request is not ready to submit")

// Season is one of the four planning seasons.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// Valid reports whether s names a known season.
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

// Day-count bounds for a trip.
const (
	MinTripDays = 1
	MaxTripDays = 21
)

// ClampDays forces a day count into [MinTripDays, MaxTripDays]. Every
// derived computation works from the clamped value.
func ClampDays(days int) int {
	if days < MinTripDays {
		return MinTripDays
	}
	if days > MaxTripDays {
		return MaxTripDays
	}
	return days
}

// TripSpec is the traveller's basic trip frame.
type TripSpec struct {
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	TripDays        int    `json:"trip_days"`
	Season          Season `json:"season"`
}

// PlanRequest is the wire payload for the external itinerary service.
// Weights are fractions in [0,1], the integer percentages divided by 100.
type PlanRequest struct {
	FromCity    string             `json:"fromCity"`
	ToCity      string             `json:"toCity"`
	Days        int                `json:"days"`
	Season      string             `json:"season"`
	Preferences map[string]float64 `json:"preferences"`
	MustVisit   []string           `json:"mustVisit,omitempty"`
}

// IsReady reports whether every submit constraint holds at once: both
// cities set (the same city twice is structurally legal), days within
// bounds, the distribution totalling exactly 100 with nothing over budget,
// and a known season.
func IsReady(spec TripSpec, dist interests.Distribution) bool {
	if spec.OriginCity == "" || spec.DestinationCity == "" {
		return false
	}
	if spec.TripDays < MinTripDays || spec.TripDays > MaxTripDays {
		return false
	}
	if !spec.Season.Valid() {
		return false
	}
	return interests.TotalPercent(dist) == 100 && interests.RemainingPercent(dist) >= 0
}

// BuildRequest converts the validated inputs into the wire payload. The
// selection is optional; nil means no must-visit stops travel with the
// request.
func BuildRequest(spec TripSpec, dist interests.Distribution, selection []string) (PlanRequest, error) {
	if !IsReady(spec, dist) {
		return PlanRequest{}, ErrNotReady
	}
	prefs := make(map[string]float64, len(dist))
	for theme, pct := range dist {
		prefs[string(theme)] = float64(pct) / 100
	}
	return PlanRequest{
		FromCity:    spec.OriginCity,
		ToCity:      spec.DestinationCity,
		Days:        spec.TripDays,
		Season:      string(spec.Season),
		Preferences: prefs,
		MustVisit:   selection,
	}, nil
}
