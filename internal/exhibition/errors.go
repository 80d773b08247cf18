package exhibition

import (
	"net/http"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
)

const (
	exhibitionNotFound     = "EXHIBITION_NOT_FOUND"     // errInfo
	invalidExhibitionInfo  = "INVALID_EXHIBITION_INFO"  // errInfo
	existExhibitionLike    = "EXIST_EXHIBITIONLIKE"     // errInfo
	notExistExhibitionLike = "NOT_EXIST_EXHIBITIONLIKE" // errInfo
	existExhibitionHope    = "EXIST_EXHIBITIONHOPE"     // errInfo
	notExistExhibitionHope = "NOT_EXIST_EXHIBITIONHOPE" // errInfo
	sameExhibitionHope     = "SAME_EXHIBITIONHOPE"      // errInfo
	hopeIndexNotFound      = "HOPEINDEX_NOT_FOUND"      // errInfo
)

var (
	ErrExhibitionNotFound     = sharedError.NewDomainError(exhibitionNotFound)
	ErrInvalidExhibitionInfo  = sharedError.NewDomainError(invalidExhibitionInfo)
	ErrExistExhibitionLike    = sharedError.NewDomainError(existExhibitionLike)
	ErrNotExistExhibitionLike = sharedError.NewDomainError(notExistExhibitionLike)
	ErrExistExhibitionHope    = sharedError.NewDomainError(existExhibitionHope)
	ErrNotExistExhibitionHope = sharedError.NewDomainError(notExistExhibitionHope)
	ErrSameExhibitionHope     = sharedError.NewDomainError(sameExhibitionHope)
	ErrHopeIndexNotFound      = sharedError.NewDomainError(hopeIndexNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(exhibitionNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "EXHIBITION-001",
		Message: "전시회 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidExhibitionInfo, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "EXHIBITION-002",
		Message: "전시회 정보가 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(existExhibitionLike, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LIKE-001",
		Message: "이미 좋아요한 전시회입니다.",
	})

	sharedError.RegisterDomainErrorResponse(notExistExhibitionLike, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LIKE-002",
		Message: "좋아요하지 않은 전시회입니다.",
	})

	sharedError.RegisterDomainErrorResponse(existExhibitionHope, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "HOPE-001",
		Message: "이미 기대평을 남긴 전시회입니다.",
	})

	sharedError.RegisterDomainErrorResponse(notExistExhibitionHope, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "HOPE-002",
		Message: "남긴 기대평이 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(sameExhibitionHope, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "HOPE-003",
		Message: "기존과 같은 기대평입니다.",
	})

	sharedError.RegisterDomainErrorResponse(hopeIndexNotFound, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "HOPE-004",
		Message: "존재하지 않는 기대평 항목입니다.",
	})
}
