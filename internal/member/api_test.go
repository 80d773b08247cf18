package member_test

import (
	"net/http"
	"testing"

	"github.com/artfriendly/go-api-server/internal/member"
	"github.com/artfriendly/go-api-server/internal/model"
	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// setupTestEnvironment creates a router authenticated as a freshly created member
func setupTestEnvironment(t *testing.T) (*gin.Engine, *model.Member, *testutil.MockStorage) {
	t.Helper()

	service, _, store := newService(t)
	created, err := service.CreateMember(t.Context(), "me@example.com", "미술친구", "https://img/default.png")
	require.NoError(t, err)

	memberHandler := member.NewMemberHandler(service)

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/members", testutil.AuthAs(created.ID, model.RoleUser))
	group.GET("/me", memberHandler.GetMemberDetails)
	group.GET("/profile", memberHandler.GetProfile)
	group.PATCH("", memberHandler.UpdateMember)
	group.PUT("/image", memberHandler.UpdateMemberImage)
	group.DELETE("", memberHandler.Withdraw)

	return router, created, store
}

func TestGetMemberDetails_Success(t *testing.T) {
	// Given
	router, created, _ := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var response member.MemberDetailsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, "me@example.com", response.Email)
	assert.Equal(t, model.RoleUser, response.Role)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	service, _, _ := newService(t)
	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/profile", member.NewMemberHandler(service).GetProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/profile",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateMember_ValidationError(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name     string
		nickname string
	}{
		{name: "too short", nickname: "a"},
		{name: "too long", nickname: "abcdefghijk"},
		{name: "special characters", nickname: "nick!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPatch,
				URL:    "/api/v1/members",
				Body:   map[string]string{"nickname": tc.nickname},
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, sharedError.ValidationFailed.Code, errorResponse.Code)
		})
	}
}

func TestUpdateMember_Success(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/v1/members",
		Body:   member.UpdateMemberRequest{Nickname: "새닉네임"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var response member.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "새닉네임", response.Nickname)
}

func TestUpdateMemberImage_Success(t *testing.T) {
	// Given
	router, _, store := setupTestEnvironment(t)

	// When
	recorder := testutil.ExecuteMultipart(t, router, http.MethodPut, "/api/v1/members/image", "image", "me.PNG", pngHeader)

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var response member.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Contains(t, response.ImageURL, "members/")
	assert.Contains(t, response.ImageURL, ".png")
	assert.Len(t, store.Objects, 1)
	assert.Empty(t, store.Deleted, "default image must not be deleted")

	// When: upload again
	recorder = testutil.ExecuteMultipart(t, router, http.MethodPut, "/api/v1/members/image", "image", "me2.png", pngHeader)

	// Then: previous object removed
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, store.Objects, 1)
	assert.Len(t, store.Deleted, 1)
}

func TestUpdateMemberImage_RejectsNonImage(t *testing.T) {
	router, _, store := setupTestEnvironment(t)

	recorder := testutil.ExecuteMultipart(t, router, http.MethodPut, "/api/v1/members/image", "image", "note.txt", []byte("plain text body"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
	assert.Empty(t, store.Objects)
}

func TestUpdateMemberImage_MissingFile(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteMultipart(t, router, http.MethodPut, "/api/v1/members/image", "file", "me.png", pngHeader)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestWithdraw_Success(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members",
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
