package auth

import (
	"net/http"

	"github.com/artfriendly/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const providerParam = "provider"

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Authorize redirects to the provider's consent page
func (a *AuthHandler) Authorize(c *gin.Context) {
	redirect, err := a.authService.AuthorizationURL(c.Request.Context(), c.Param(providerParam))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, redirect)
}

// Callback always answers with a redirect to the front end, on failure with an error code.
func (a *AuthHandler) Callback(c *gin.Context) {
	var request CallbackRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.Error(err)
		c.Redirect(http.StatusFound, a.authService.FailureRedirectURL(err))
		return
	}

	redirect, err := a.authService.HandleCallback(c.Request.Context(), c.Param(providerParam), &request)
	if err != nil {
		c.Error(err)
		c.Redirect(http.StatusFound, a.authService.FailureRedirectURL(err))
		return
	}
	c.Redirect(http.StatusFound, redirect)
}

func (a *AuthHandler) IssueToken(c *gin.Context) {
	var request TokenRequest
	if !handler.BindQuery(c, &request) {
		return
	}

	response, err := a.authService.IssueToken(c.Request.Context(), request.Code)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) Refresh(c *gin.Context) {
	var request RefreshRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Refresh(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (a *AuthHandler) AdminLogin(c *gin.Context) {
	var request AdminLoginRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.AdminLogin(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
