package request_models

// TravelInput is the trip the user asks an itinerary for. Dates are free text.
type TravelInput struct {
	Companions  string   `json:"companions"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Style       []string `json:"style"`
	Budget      string   `json:"budget"`
}

// TravelPlanRequest is the /travel-plan body. Every key must be present; empty
// strings and an empty style list are accepted.
type TravelPlanRequest struct {
	Companions  *string  `json:"companions" binding:"required"`
	Destination *string  `json:"destination" binding:"required"`
	StartDate   *string  `json:"start_date" binding:"required"`
	EndDate     *string  `json:"end_date" binding:"required"`
	Style       []string `json:"style" binding:"required"`
	Budget      *string  `json:"budget" binding:"required"`
}

func (r TravelPlanRequest) ToInput() TravelInput {
	return TravelInput{
		Companions:  deref(r.Companions),
		Destination: deref(r.Destination),
		StartDate:   deref(r.StartDate),
		EndDate:     deref(r.EndDate),
		Style:       r.Style,
		Budget:      deref(r.Budget),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
