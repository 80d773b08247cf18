package dambyeolag

import (
	"net/http"

	sharedContext "github.com/artfriendly/go-api-server/internal/shared/context"
	"github.com/artfriendly/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const dambyeolagIDParam = "dambyeolagId"

type DambyeolagHandler struct {
	dambyeolagService *DambyeolagService
}

func NewDambyeolagHandler(dambyeolagService *DambyeolagService) *DambyeolagHandler {
	return &DambyeolagHandler{
		dambyeolagService: dambyeolagService,
	}
}

func (h *DambyeolagHandler) GetDetails(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	dambyeolagID, ok := handler.ParseIDParam(c, dambyeolagIDParam)
	if !ok {
		return
	}

	response, err := h.dambyeolagService.GetDetails(c.Request.Context(), memberID, dambyeolagID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DambyeolagHandler) GetPage(c *gin.Context) {
	var request PageRequest
	if !handler.BindQuery(c, &request) {
		return
	}

	response, err := h.dambyeolagService.GetPage(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DambyeolagHandler) Create(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreateDambyeolagRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.dambyeolagService.Create(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *DambyeolagHandler) Delete(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	dambyeolagID, ok := handler.ParseIDParam(c, dambyeolagIDParam)
	if !ok {
		return
	}

	if err := h.dambyeolagService.Delete(c.Request.Context(), memberID, dambyeolagID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DambyeolagHandler) AddBookmark(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	dambyeolagID, ok := handler.ParseIDParam(c, dambyeolagIDParam)
	if !ok {
		return
	}

	if err := h.dambyeolagService.AddBookmark(c.Request.Context(), memberID, dambyeolagID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *DambyeolagHandler) DeleteBookmark(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	dambyeolagID, ok := handler.ParseIDParam(c, dambyeolagIDParam)
	if !ok {
		return
	}

	if err := h.dambyeolagService.DeleteBookmark(c.Request.Context(), memberID, dambyeolagID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DambyeolagHandler) GetBookmarked(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.dambyeolagService.GetBookmarked(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
