package response_models

// PlanResponse is the itinerary produced by the external planning service,
// passed through to the frontend as-is.
type PlanResponse struct {
	FromCity string    `json:"from_city"`
	ToCity   string    `json:"to_city"`
	NumDays  int       `json:"num_days"`
	Season   string    `json:"season"`
	Days     []PlanDay `json:"days"`
}

type PlanDay struct {
	Day           int       `json:"day"`
	Title         string    `json:"title"`
	FromCity      *string   `json:"from_city"`
	ToCity        string    `json:"to_city"`
	TravelMinutes float64   `json:"travel_minutes"`
	Summary       []string  `json:"summary"`
	Note          *string   `json:"note"`
	POIs          []PlanPOI `json:"pois"`
}

type PlanPOI struct {
	Identifier  string   `json:"identifier"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Labels      []string `json:"labels"`
	Description *string  `json:"description"`
	Abstract    *string  `json:"abstract"`
	Photo       *string  `json:"photo,omitempty"`
	NeededTime  *string  `json:"needed_time,omitempty"`
}
