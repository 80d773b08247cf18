package member

import (
	"net/http"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
)

const (
	memberNotFound   = "MEMBER_NOT_FOUND"   // errInfo
	invalidImageFile = "INVALID_IMAGE_FILE" // errInfo
)

var (
	ErrMemberNotFound   = sharedError.NewDomainError(memberNotFound)
	ErrInvalidImageFile = sharedError.NewDomainError(invalidImageFile)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidImageFile, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-002",
		Message: "이미지 파일만 업로드할 수 있습니다.",
	})
}
