package utils

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

// ClassifyProviderError wraps a raw client error into a *ProviderError whose Kind
// tells quota, outage, timeout and rejected-request failures apart.
func ClassifyProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return newProviderError(provider, providerErrorKind(err), err)
}

func providerErrorKind(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return ErrProviderRejected
	}

	var ae *apierror.APIError
	if errors.As(err, &ae) {
		if code := ae.HTTPCode(); code > 0 {
			return kindFromHTTPStatus(code)
		}
		if st := ae.GRPCStatus(); st != nil {
			return kindFromGRPCCode(st.Code())
		}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return kindFromHTTPStatus(gerr.Code)
	}

	var oaErr *openai.APIError
	if errors.As(err, &oaErr) {
		return kindFromHTTPStatus(oaErr.HTTPStatusCode)
	}
	var oaReqErr *openai.RequestError
	if errors.As(err, &oaReqErr) {
		return kindFromHTTPStatus(oaReqErr.HTTPStatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrProviderTimeout
	}

	return ErrProviderUnavailable
}

func kindFromHTTPStatus(code int) error {
	switch {
	case code == http.StatusTooManyRequests:
		return ErrProviderQuota
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return ErrProviderTimeout
	case code >= 500:
		return ErrProviderUnavailable
	case code >= 400:
		return ErrProviderRejected
	default:
		return ErrProviderUnavailable
	}
}

func kindFromGRPCCode(code codes.Code) error {
	switch code {
	case codes.ResourceExhausted:
		return ErrProviderQuota
	case codes.DeadlineExceeded:
		return ErrProviderTimeout
	case codes.InvalidArgument, codes.FailedPrecondition, codes.PermissionDenied,
		codes.Unauthenticated, codes.NotFound:
		return ErrProviderRejected
	default:
		return ErrProviderUnavailable
	}
}
