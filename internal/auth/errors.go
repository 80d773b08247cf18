package auth

import (
	"net/http"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
)

const (
	unsupportedProvider    = "UNSUPPORTED_PROVIDER"     // errInfo
	invalidOAuthState      = "INVALID_OAUTH_STATE"      // errInfo
	invalidOTUCode         = "INVALID_OTU_CODE"         // errInfo
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	oauthEmailRequired     = "OAUTH_EMAIL_REQUIRED"     // errInfo
	oauthProviderFailure   = "OAUTH_PROVIDER_FAILURE"   // errInfo
	invalidRefreshToken    = "INVALID_REFRESH_TOKEN"    // errInfo
)

var (
	ErrUnsupportedProvider    = sharedError.NewDomainError(unsupportedProvider)
	ErrInvalidOAuthState      = sharedError.NewDomainError(invalidOAuthState)
	ErrInvalidOTUCode         = sharedError.NewDomainError(invalidOTUCode)
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrOAuthEmailRequired     = sharedError.NewDomainError(oauthEmailRequired)
	ErrOAuthProviderFailure   = sharedError.NewDomainError(oauthProviderFailure)
	ErrInvalidRefreshToken    = sharedError.NewDomainError(invalidRefreshToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(unsupportedProvider, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "OAUTH-001",
		Message: "지원하지 않는 로그인 방식입니다.",
	})
	sharedError.RegisterDomainErrorResponse(invalidOAuthState, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "OAUTH-002",
		Message: "유효하지 않은 로그인 요청입니다. 다시 시도해 주세요.",
	})
	sharedError.RegisterDomainErrorResponse(invalidOTUCode, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "OAUTH-003",
		Message: "만료되었거나 이미 사용된 인증 코드입니다.",
	})
	sharedError.RegisterDomainErrorResponse(oauthEmailRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "OAUTH-004",
		Message: "이메일 제공에 동의해야 로그인할 수 있습니다.",
	})
	sharedError.RegisterDomainErrorResponse(oauthProviderFailure, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "OAUTH-005",
		Message: "소셜 로그인 서버와 통신에 실패했습니다.",
	})
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})
	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "유효하지 않은 refresh 토큰입니다.",
	})
}
