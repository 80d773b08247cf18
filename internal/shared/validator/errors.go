package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(validationErrors[0])
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목을 입력해 주세요."
	case "email":
		return "이메일 형식이 올바르지 않습니다."
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' 값은 %s 이상이어야 합니다.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' 값은 %s 이하여야 합니다.", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("'%s' 날짜 형식이 올바르지 않습니다. (%s)", fe.Field(), fe.Param())
	case "nickname":
		return "닉네임은 한글, 영문, 숫자로 2~10자여야 합니다."
	case "sorttype":
		return "정렬 방식은 latest 또는 popular 중 하나여야 합니다."
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
