package request_models

// UpdateTripRequest sets the basic trip frame. Days outside [1,21] are
// clamped server-side, mirroring the form's bounded stepper.
type UpdateTripRequest struct {
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	TripDays        int    `json:"trip_days"`
	Season          string `json:"season"`
}

// MoveRankRequest swaps the theme at Position with its neighbour.
// Direction is -1 (up) or +1 (down).
type MoveRankRequest struct {
	Position  int `json:"position"`
	Direction int `json:"direction"`
}

// ReorderRankRequest drops a dragged theme at Index.
type ReorderRankRequest struct {
	Theme string `json:"theme"`
	Index int    `json:"index"`
}

// SetWeightRequest carries the raw text of a free-entry percentage field;
// the server sanitizes it the same way the form input does.
type SetWeightRequest struct {
	Value string `json:"value"`
}

// MustVisitRequest names the attraction for add/remove.
type MustVisitRequest struct {
	Identifier string `json:"identifier"`
}
