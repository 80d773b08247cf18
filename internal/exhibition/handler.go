package exhibition

import (
	"context"
	"net/http"

	sharedContext "github.com/artfriendly/go-api-server/internal/shared/context"
	"github.com/artfriendly/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const exhibitionIDParam = "exhibitionId"

type ExhibitionHandler struct {
	exhibitionService *ExhibitionService
}

func NewExhibitionHandler(exhibitionService *ExhibitionService) *ExhibitionHandler {
	return &ExhibitionHandler{
		exhibitionService: exhibitionService,
	}
}

func (h *ExhibitionHandler) GetExhibitionPage(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request PageRequest
	if !handler.BindQuery(c, &request) {
		return
	}

	response, err := h.exhibitionService.GetExhibitionPage(c.Request.Context(), memberID, request.Page)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) GetExhibitionDetails(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	exhibitionID, ok := handler.ParseIDParam(c, exhibitionIDParam)
	if !ok {
		return
	}

	response, err := h.exhibitionService.GetExhibitionDetails(c.Request.Context(), memberID, exhibitionID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) GetEndingExhibitions(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.exhibitionService.GetTop3ByEndingDate(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) GetPopularRanking(c *gin.Context) {
	response, err := h.exhibitionService.GetTop10PopularRanking(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) GetLikedExhibitions(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.exhibitionService.GetLikedExhibitions(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) AddLike(c *gin.Context) {
	h.withMemberAndExhibition(c, http.StatusCreated, h.exhibitionService.AddExhibitionLike)
}

func (h *ExhibitionHandler) DeleteLike(c *gin.Context) {
	h.withMemberAndExhibition(c, http.StatusNoContent, h.exhibitionService.DeleteExhibitionLike)
}

func (h *ExhibitionHandler) AddHope(c *gin.Context) {
	h.withHope(c, http.StatusCreated, h.exhibitionService.AddExhibitionHope)
}

func (h *ExhibitionHandler) UpdateHope(c *gin.Context) {
	h.withHope(c, http.StatusOK, h.exhibitionService.UpdateExhibitionHope)
}

func (h *ExhibitionHandler) DeleteHope(c *gin.Context) {
	h.withMemberAndExhibition(c, http.StatusNoContent, h.exhibitionService.DeleteExhibitionHope)
}

func (h *ExhibitionHandler) CreateExhibitions(c *gin.Context) {
	var request ExhibitionListRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.exhibitionService.CreateExhibitionList(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ExhibitionHandler) UpdateExhibitions(c *gin.Context) {
	var request ExhibitionListRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.exhibitionService.UpdateExhibitionList(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ExhibitionHandler) RefreshPopularRanking(c *gin.Context) {
	if err := h.exhibitionService.UpdateTop10PopularRanking(c.Request.Context()); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExhibitionHandler) withMemberAndExhibition(c *gin.Context, status int, fn func(ctx context.Context, memberID, exhibitionID uint32) error) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	exhibitionID, ok := handler.ParseIDParam(c, exhibitionIDParam)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), memberID, exhibitionID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(status)
}

func (h *ExhibitionHandler) withHope(c *gin.Context, status int, fn func(ctx context.Context, memberID, exhibitionID uint32, hopeIndex int) error) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	exhibitionID, ok := handler.ParseIDParam(c, exhibitionIDParam)
	if !ok {
		return
	}

	var request HopeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := fn(c.Request.Context(), memberID, exhibitionID, *request.HopeIndex); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(status)
}
