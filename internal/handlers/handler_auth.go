package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hisabapp/hisab/internal/apperrors"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
	"github.com/hisabapp/hisab/internal/middleware"
)

// authHandler runs the Google sign-in flow and exposes the session.
type authHandler struct {
	oauth portssvc.GoogleOAuthSvcFacade
	token portssvc.TokenSvcFacade
}

func registerAuthRoutes(rg *gin.RouterGroup, oauth portssvc.GoogleOAuthSvcFacade, token portssvc.TokenSvcFacade) {
	h := &authHandler{oauth: oauth, token: token}
	rg.POST("/google/exchange-code", h.exchangeCodeGoogle)
}

func registerSessionRoute(rg *gin.RouterGroup) {
	rg.GET("/session", getSession)
}

// exchangeCodeGoogle swaps the authorization code delivered by the UI for
// Google tokens, validates the ID token, enforces the allow-list and
// issues the application JWT.
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	oauthToken, err := h.oauth.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid authorization code")
		c.JSON(appErr.Code, appErr)
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("Google token response is missing the id_token")
		appErr := apperrors.NewUnauthorizedError("Google did not return an identity token")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.oauth.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid identity token")
		c.JSON(appErr.Code, appErr)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	image, _ := payload.Claims["picture"].(string)

	if !h.oauth.IsEmailAllowed(email) {
		logger.Warn("Sign-in rejected, email not on the allow-list", slog.String("email", email))
		appErr := apperrors.NewForbiddenError("This account is not allowed to use the app")
		c.JSON(appErr.Code, appErr)
		return
	}

	appToken, err := h.token.IssueToken(email, name, image)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to establish session")
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Info("User signed in", slog.String("email", email))
	c.JSON(http.StatusOK, dto.ExchangeCodeResponse{
		Token: appToken,
		User:  dto.SessionResponse{Email: email, Name: name, Image: image},
	})
}

// getSession echoes the identity carried by the bearer token so the UI can
// restore a session after a reload.
func getSession(c *gin.Context) {
	session, ok := middleware.GetSessionFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Email: session.Email, Name: session.Name, Image: session.Image})
}
