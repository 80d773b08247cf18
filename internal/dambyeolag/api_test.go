package dambyeolag_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/artfriendly/go-api-server/internal/dambyeolag"
	"github.com/artfriendly/go-api-server/internal/model"
	sharedError "github.com/artfriendly/go-api-server/internal/shared/error"
	"github.com/artfriendly/go-api-server/internal/shared/page"
	"github.com/artfriendly/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(f *fixture, memberID uint32) *gin.Engine {
	h := dambyeolag.NewDambyeolagHandler(f.service)
	router := testutil.SetupTestRouter()

	group := router.Group("/api/v1/dambyeolags", testutil.AuthAs(memberID, model.RoleUser))
	group.POST("", h.Create)
	group.GET("/lists", h.GetPage)
	group.GET("/bookmarks", h.GetBookmarked)
	group.GET("/:dambyeolagId", h.GetDetails)
	group.DELETE("/:dambyeolagId", h.Delete)
	group.POST("/:dambyeolagId/bookmarks", h.AddBookmark)
	group.DELETE("/:dambyeolagId/bookmarks", h.DeleteBookmark)

	return router
}

func TestDambyeolagAPI_Create(t *testing.T) {
	f := setupFixture(t)
	router := setupRouter(f, f.writerID)

	testCases := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{
			name:   "success",
			body:   dambyeolag.CreateDambyeolagRequest{ExhibitionID: f.exhibitionID, Content: "좋은 전시"},
			status: http.StatusCreated,
		},
		{
			name:   "empty content",
			body:   dambyeolag.CreateDambyeolagRequest{ExhibitionID: f.exhibitionID, Content: ""},
			status: http.StatusBadRequest,
			code:   sharedError.ValidationFailed.Code,
		},
		{
			name:   "content too long",
			body:   dambyeolag.CreateDambyeolagRequest{ExhibitionID: f.exhibitionID, Content: strings.Repeat("가", 501)},
			status: http.StatusBadRequest,
			code:   sharedError.ValidationFailed.Code,
		},
		{
			name:   "unknown exhibition",
			body:   dambyeolag.CreateDambyeolagRequest{ExhibitionID: 9999, Content: "좋은 전시"},
			status: http.StatusNotFound,
			code:   "EXHIBITION-001",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/dambyeolags",
				Body:   tc.body,
			})

			require.Equal(t, tc.status, recorder.Code)
			if tc.code != "" {
				var errorResponse sharedError.ErrorResponse
				testutil.ParseResponse(t, recorder, &errorResponse)
				assert.Equal(t, tc.code, errorResponse.Code)
			}
		})
	}
}

func TestDambyeolagAPI_Lists(t *testing.T) {
	f := setupFixture(t)
	router := setupRouter(f, f.readerID)
	f.write(t, f.writerID, "첫 글")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/dambyeolags/lists?page=0&exhibitionId=%d&sortType=popular", f.exhibitionID),
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var response page.Page[dambyeolag.DambyeolagResponse]
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Content, 1)
	assert.Equal(t, "첫 글", response.Content[0].Content)
	assert.Equal(t, 10, response.Size)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/dambyeolags/lists?exhibitionId=%d&sortType=oldest", f.exhibitionID),
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/dambyeolags/lists?page=0",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/dambyeolags/lists?page=10001&exhibitionId=%d", f.exhibitionID),
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDambyeolagAPI_DeleteForbidden(t *testing.T) {
	f := setupFixture(t)
	id := f.write(t, f.writerID, "남의 글")
	router := setupRouter(f, f.readerID)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/v1/dambyeolags/%d", id),
	})

	require.Equal(t, http.StatusForbidden, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "DAMBYEOLAG-002", errorResponse.Code)
}

func TestDambyeolagAPI_Bookmarks(t *testing.T) {
	f := setupFixture(t)
	id := f.write(t, f.writerID, "북마크")
	router := setupRouter(f, f.readerID)
	url := fmt.Sprintf("/api/v1/dambyeolags/%d/bookmarks", id)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodPost, URL: url})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodPost, URL: url})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/v1/dambyeolags/bookmarks"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var bookmarked []dambyeolag.DambyeolagResponse
	testutil.ParseResponse(t, recorder, &bookmarked)
	require.Len(t, bookmarked, 1)
	assert.Equal(t, int64(1), bookmarked[0].BookmarkCount)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: fmt.Sprintf("/api/v1/dambyeolags/%d", id)})
	require.Equal(t, http.StatusOK, recorder.Code)
	var details dambyeolag.DambyeolagDetailsResponse
	testutil.ParseResponse(t, recorder, &details)
	assert.True(t, details.IsBookmarked)
	assert.False(t, details.IsMine)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodDelete, URL: url})
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodDelete, URL: url})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
