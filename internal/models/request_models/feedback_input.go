package request_models

type FeedbackInput struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type ResetChatInput struct {
	SessionID string `json:"session_id"`
}
