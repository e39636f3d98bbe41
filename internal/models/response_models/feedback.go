package response_models

type FeedbackResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type ResetChatResponse struct {
	Message string `json:"message"`
}
