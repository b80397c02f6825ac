package response_models

import (
	"alpinepulse/internal/planner/interests"
	"alpinepulse/internal/planner/mustvisit"
	"alpinepulse/internal/planner/triprequest"
)

// PlannerSessionState is the full snapshot the frontend renders from.
type PlannerSessionState struct {
	SessionID string                `json:"session_id"`
	Trip      triprequest.TripSpec  `json:"trip"`
	Themes    []interests.ThemeInfo `json:"themes"`

	Order        []interests.Theme      `json:"order,omitempty"`
	Balanced     bool                   `json:"balanced"`
	Distribution interests.Distribution `json:"distribution"`
	TotalPercent int                    `json:"total_percent"`
	Remaining    int                    `json:"remaining_percent"`

	Selection      SelectionState `json:"selection"`
	Ready          bool           `json:"ready"`
	SubmitInFlight bool           `json:"submit_in_flight"`
}

// SelectionState mirrors the must-visit selector for rendering.
type SelectionState struct {
	State      mustvisit.State       `json:"state"`
	Candidates []mustvisit.Candidate `json:"candidates"`
	Cursor     int                   `json:"cursor"`
	Selected   []string              `json:"selected"`
	Capacity   int                   `json:"capacity"`
	Message    string                `json:"message,omitempty"`
	Saved      bool                  `json:"saved"`
}

type CityResponse struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

type AttractionResponse struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Photo      string `json:"photo,omitempty"`
}
