package utils

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError names a request field that failed binding.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// RespondSuccess writes the payload as-is; the mobile client reads flat bodies.
func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondBindingError rejects a request whose body failed to bind or validate.
func RespondBindingError(c *gin.Context, err error) {
	resp := APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Invalid request",
		TraceID: c.GetString("trace_id"),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		resp.Data = fields
	}

	c.JSON(http.StatusUnprocessableEntity, resp)
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusUnprocessableEntity, "Invalid request")
	case errors.Is(err, ErrProviderQuota):
		zap.L().Warn("provider quota exceeded", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusTooManyRequests, "AI provider quota exceeded, try again later")
	case errors.Is(err, ErrProviderRejected), errors.Is(err, ErrEmptyResponse):
		zap.L().Error("provider returned an unusable response", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "AI provider could not produce a response")
	case errors.Is(err, ErrProviderUnavailable):
		zap.L().Error("provider unavailable", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusServiceUnavailable, "AI provider is unavailable")
	case errors.Is(err, ErrProviderTimeout):
		zap.L().Error("provider timeout", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusGatewayTimeout, "AI provider did not respond in time")
	default:
		zap.L().Error("unknown error", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// UseJSONFieldNames makes validation errors report json tag names
// (start_date rather than StartDate).
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}
