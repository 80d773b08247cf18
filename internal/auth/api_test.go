package auth

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(f *fixture) *gin.Engine {
	h := NewAuthHandler(f.service)
	router := testutil.SetupTestRouter()

	router.GET("/oauth2/authorization/:provider", h.Authorize)
	router.GET("/login/oauth2/code/:provider", h.Callback)
	router.GET("/oauth/token", h.IssueToken)
	router.POST("/oauth/token/refresh", h.Refresh)
	router.POST("/api/v1/auth/admin/login", h.AdminLogin)
	return router
}

func TestAuthAPI_LoginFlow(t *testing.T) {
	f := setupFixture(t, kakaoUserInfo)
	router := setupRouter(f)

	// Given: browser is sent to the provider
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/oauth2/authorization/kakao"})
	require.Equal(t, http.StatusFound, recorder.Code)
	location, err := url.Parse(recorder.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/oauth/authorize", location.Path)
	state := location.Query().Get("state")

	// When: provider redirects back
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/login/oauth2/code/kakao?code=" + validCode + "&state=" + state,
	})

	// Then: front end receives a one-time code
	require.Equal(t, http.StatusFound, recorder.Code)
	redirect := recorder.Header().Get("Location")
	assert.True(t, strings.HasPrefix(redirect, f.cfg.OAuth.RedirectURL))
	location, err = url.Parse(redirect)
	require.NoError(t, err)
	code := location.Query().Get("code")
	require.NotEmpty(t, code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/oauth/token?code=" + code})
	require.Equal(t, http.StatusOK, recorder.Code)
	var tokens TokenResponse
	testutil.ParseResponse(t, recorder, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/oauth/token?code=" + code})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "OAUTH-003", errorResponse.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/oauth/token/refresh",
		Body:   RefreshRequest{RefreshToken: tokens.RefreshToken},
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthAPI_Errors(t *testing.T) {
	f := setupFixture(t, kakaoUserInfo)
	router := setupRouter(f)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/oauth2/authorization/github"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "OAUTH-001", errorResponse.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/login/oauth2/code/kakao?code=x&state=forged"})
	require.Equal(t, http.StatusFound, recorder.Code)
	location, err := url.Parse(recorder.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "OAUTH-002", location.Query().Get("error"))

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/oauth/token"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/oauth/token/refresh",
		Body:   RefreshRequest{RefreshToken: "garbage"},
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthAPI_AdminLogin(t *testing.T) {
	f := setupFixture(t, kakaoUserInfo)
	router := setupRouter(f)
	require.NoError(t, f.service.memberService.EnsureAdmin(t.Context(), f.cfg.Admin.Email, f.cfg.Admin.Password))

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/admin/login",
		Body:   AdminLoginRequest{Email: f.cfg.Admin.Email, Password: f.cfg.Admin.Password},
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/admin/login",
		Body:   AdminLoginRequest{Email: f.cfg.Admin.Email, Password: "wrong-password"},
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/admin/login",
		Body:   map[string]string{"email": "not-an-email", "password": "password123"},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
