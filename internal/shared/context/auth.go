package context

import (
	"strconv"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/logger"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
	MemberRoleKey  = "member_role"
)

func GetMemberID(c *gin.Context) (uint32, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := memberID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// GetMemberRole returns the role stored by the JWT middleware.
func GetMemberRole(c *gin.Context) string {
	return c.GetString(MemberRoleKey)
}

// RequireMemberID retrieves the authenticated member's ID from the Gin context.
// If the member ID is not found, an authentication error response is sent and false is returned.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.JSON(sharedError.Unauthorized.Status, sharedError.Unauthorized)
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.")
		return 0, false
	}
	return memberID, true
}
