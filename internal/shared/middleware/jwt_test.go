package middleware

import (
	"net/http"
	"testing"

	sharedContext "github.com/artfriendly/go-api-server/internal/shared/context"
	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/testutil"
	"github.com/artfriendly/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTRouter(tokenManager token.Manager) *gin.Engine {
	router := testutil.SetupTestRouter()

	whoami := func(c *gin.Context) {
		memberID, _ := sharedContext.GetMemberID(c)
		c.JSON(http.StatusOK, gin.H{"memberId": memberID, "role": sharedContext.GetMemberRole(c)})
	}
	router.GET("/me", JWT(tokenManager), whoami)
	router.GET("/admin", JWT(tokenManager), RequireRole("ADMIN"), whoami)
	return router
}

func TestJWT(t *testing.T) {
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	router := setupJWTRouter(tokenManager)

	access, err := tokenManager.GenerateAccessToken(token.Subject{MemberID: "7", Role: "USER"})
	require.NoError(t, err)
	refresh, err := tokenManager.GenerateRefreshToken(token.Subject{MemberID: "7", Role: "USER"})
	require.NoError(t, err)
	admin, err := tokenManager.GenerateAccessToken(token.Subject{MemberID: "1", Role: "ADMIN"})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		url    string
		header string
		status int
		code   string
	}{
		{name: "missing header", url: "/me", status: http.StatusUnauthorized, code: sharedError.Unauthorized.Code},
		{name: "wrong scheme", url: "/me", header: "Basic " + access, status: http.StatusUnauthorized, code: sharedError.Unauthorized.Code},
		{name: "garbage token", url: "/me", header: "Bearer garbage", status: http.StatusUnauthorized, code: sharedError.Unauthorized.Code},
		{name: "refresh token rejected", url: "/me", header: "Bearer " + refresh, status: http.StatusUnauthorized, code: sharedError.Unauthorized.Code},
		{name: "access token", url: "/me", header: "Bearer " + access, status: http.StatusOK},
		{name: "user on admin route", url: "/admin", header: "Bearer " + access, status: http.StatusForbidden, code: sharedError.Forbidden.Code},
		{name: "admin on admin route", url: "/admin", header: "Bearer " + admin, status: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.TestRequest{Method: http.MethodGet, URL: tc.url}
			if tc.header != "" {
				req.Headers = map[string]string{AuthorizationHeader: tc.header}
			}

			recorder := testutil.ExecuteRequest(t, router, req)

			require.Equal(t, tc.status, recorder.Code)
			if tc.code != "" {
				var errorResponse sharedError.ErrorResponse
				testutil.ParseResponse(t, recorder, &errorResponse)
				assert.Equal(t, tc.code, errorResponse.Code)
			}
		})
	}
}

func TestJWT_SetsMember(t *testing.T) {
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	router := setupJWTRouter(tokenManager)
	access, err := tokenManager.GenerateAccessToken(token.Subject{MemberID: "7", Role: "USER"})
	require.NoError(t, err)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/me",
		Headers: map[string]string{AuthorizationHeader: "Bearer " + access},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		MemberID uint32 `json:"memberId"`
		Role     string `json:"role"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, uint32(7), body.MemberID)
	assert.Equal(t, "USER", body.Role)
}
