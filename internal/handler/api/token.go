package api

import (
	"errors"
	"net/http"

	reqdto "haggle-service/internal/handler/dto/request"
	resdto "haggle-service/internal/handler/dto/response"
	"haggle-service/internal/handler/httperr"
	"haggle-service/internal/handler/middleware"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/commands"
	"haggle-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenHandler struct {
	commands commands.TokenCommands
	queries  queries.TokenQueries
}

func NewTokenHandler(commands commands.TokenCommands, queries queries.TokenQueries) *TokenHandler {
	return &TokenHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Validate discount code
// @Description Check whether a discount code applies to a purchase by the current buyer
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateTokenRequest true "Validation request"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /tokens/validate [post]
func (h *TokenHandler) ValidateToken(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.ValidateTokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	// Invalid codes are a 200 with valid=false, not an error status.
	resultRM, err := h.queries.Validate(c.Request.Context(), req.Code, buyerID, req.ItemID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(resultRM))
}

// @Summary Redeem discount code
// @Description Consume a discount code after payment capture; each code redeems at most once
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemTokenRequest true "Redemption request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /tokens/redeem [post]
func (h *TokenHandler) RedeemToken(c *gin.Context) {
	var req reqdto.RedeemTokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	tokenRM, err := h.commands.Redeem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTokenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount code not found", nil)
		case errors.Is(err, errs.ErrTokenAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Discount code has already been used", nil)
		case errors.Is(err, errs.ErrTokenExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Discount code has expired", nil)
		case errors.Is(err, errs.ErrTokenNotValid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Discount code is not redeemable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenView(tokenRM))
}

// @Summary Get session token
// @Description Get the settlement token issued for an accepted negotiation
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /negotiations/{id}/token [get]
func (h *TokenHandler) GetSessionToken(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return
	}

	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	tokenRM, err := h.queries.GetBySession(c.Request.Context(), sessionID, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTokenNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No token issued for this negotiation", nil)
		case errors.Is(err, errs.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed for this negotiation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenView(tokenRM))
}
