package dambyeolag

import (
	"net/http"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
)

const (
	dambyeolagNotFound = "DAMBYEOLAG_NOT_FOUND" // errInfo
	notDambyeolagOwner = "NOT_DAMBYEOLAG_OWNER" // errInfo
	existBookmark      = "EXIST_BOOKMARK"       // errInfo
	bookmarkNotFound   = "BOOKMARK_NOT_FOUND"   // errInfo
)

var (
	ErrDambyeolagNotFound = sharedError.NewDomainError(dambyeolagNotFound)
	ErrNotDambyeolagOwner = sharedError.NewDomainError(notDambyeolagOwner)
	ErrExistBookmark      = sharedError.NewDomainError(existBookmark)
	ErrBookmarkNotFound   = sharedError.NewDomainError(bookmarkNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(dambyeolagNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "DAMBYEOLAG-001",
		Message: "담벼락을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(notDambyeolagOwner, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "DAMBYEOLAG-002",
		Message: "본인이 작성한 담벼락만 삭제할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(existBookmark, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "BOOKMARK-001",
		Message: "이미 북마크한 담벼락입니다.",
	})

	sharedError.RegisterDomainErrorResponse(bookmarkNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOOKMARK-002",
		Message: "북마크를 찾을 수 없습니다.",
	})
}
