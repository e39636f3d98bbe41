package response_models

type TravelPlanResponse struct {
	Plan string `json:"plan"`
}
