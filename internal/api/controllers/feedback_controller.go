package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"triptalk/internal/models/request_models"
	"triptalk/internal/models/response_models"
	"triptalk/internal/services"
	"triptalk/pkg/utils"
)

const (
	SessionHeader = "X-Session-ID"

	resetChatMessage = "대화 기록이 초기화되었습니다."
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Feedback godoc
// @Summary Refine the plan through chat
// @Description Appends the message to the session transcript and returns the model reply
// @Tags Feedback
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id, used when the body has none"
// @Param request body request_models.FeedbackInput true "Feedback message"
// @Success 200 {object} response_models.FeedbackResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) Feedback(c *gin.Context) {
	var req request_models.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	sessionID, err := services.NormalizeSessionID(sessionIDFrom(c, req.SessionID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := f.feedbackService.SendFeedback(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FeedbackResponse{Reply: reply, SessionID: sessionID})
}

// ResetChat godoc
// @Summary Reset chat history
// @Description Clears the session transcript. The body is optional.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id, used when the body has none"
// @Param request body request_models.ResetChatInput false "Session to reset"
// @Success 200 {object} response_models.ResetChatResponse
// @Router /reset-chat [post]
func (f *FeedbackController) ResetChat(c *gin.Context) {
	var req request_models.ResetChatInput
	if c.Request.ContentLength != 0 {
		// an unreadable body still resets, using the header session or default
		if err := c.ShouldBindJSON(&req); err != nil {
			req = request_models.ResetChatInput{}
		}
	}

	if err := f.feedbackService.ResetChat(c.Request.Context(), resetSessionID(c, req.SessionID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ResetChatResponse{Message: resetChatMessage})
}

// resetSessionID picks the first usable id from the body and the header.
func resetSessionID(c *gin.Context, bodyValue string) string {
	for _, candidate := range []string{bodyValue, c.GetHeader(SessionHeader)} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if id, err := services.NormalizeSessionID(candidate); err == nil {
			return id
		}
	}
	return services.DefaultSessionID
}

// sessionIDFrom prefers the body value over the header.
func sessionIDFrom(c *gin.Context, bodyValue string) string {
	if bodyValue != "" {
		return bodyValue
	}
	return c.GetHeader(SessionHeader)
}
