package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "haggle-service/internal/handler/dto/request"
	resdto "haggle-service/internal/handler/dto/response"
	"haggle-service/internal/handler/middleware"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/commands"
	"haggle-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NegotiationHandler struct {
	commands commands.NegotiationCommands
	queries  queries.NegotiationQueries
}

func NewNegotiationHandler(commands commands.NegotiationCommands, queries queries.NegotiationQueries) *NegotiationHandler {
	return &NegotiationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Open negotiation
// @Description Open a price negotiation session for an item as the buyer
// @Tags negotiations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenNegotiationRequest true "Negotiation request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /negotiations [post]
func (h *NegotiationHandler) OpenNegotiation(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.OpenNegotiationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionRM, err := h.commands.Open(c.Request.Context(), req, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateActiveSession):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An active negotiation already exists for this item",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionView(sessionRM))
}

// @Summary Get negotiation
// @Description Get a negotiation session with its message log
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /negotiations/{id} [get]
func (h *NegotiationHandler) GetNegotiation(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	detailRM, err := h.queries.GetSession(c.Request.Context(), sessionID, viewerID, role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionDetailView(detailRM))
}

// @Summary List negotiations
// @Description List negotiation sessions the current user takes part in
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum sessions to return"
// @Success 200 {array} resdto.SessionListResponse
// @Failure 401 {object} map[string]string
// @Router /negotiations [get]
func (h *NegotiationHandler) ListNegotiations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	itemsRM, err := h.queries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SessionListResponse, len(itemsRM))
	for i, rm := range itemsRM {
		response[i] = resdto.FromSessionListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Post message
// @Description Post a message or price offer to a negotiation session
// @Tags negotiations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.PostMessageRequest true "Message request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /negotiations/{id}/messages [post]
func (h *NegotiationHandler) PostMessage(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	senderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PostMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	messageRM, err := h.commands.PostMessage(c.Request.Context(), sessionID, req, senderID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageView(messageRM))
}

// @Summary Accept offer
// @Description Accept the standing offer as the seller; issues the settlement token
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /negotiations/{id}/accept [post]
func (h *NegotiationHandler) AcceptOffer(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	tokenRM, err := h.commands.Accept(c.Request.Context(), sessionID, actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenView(tokenRM))
}

// @Summary Reject offer
// @Description Reject the negotiation as the seller
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /negotiations/{id}/reject [post]
func (h *NegotiationHandler) RejectOffer(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.commands.Reject(c.Request.Context(), sessionID, actorID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Report session
// @Description Report a negotiation session for abusive behavior
// @Tags negotiations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.ReportSessionRequest true "Report request"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /negotiations/{id}/report [post]
func (h *NegotiationHandler) ReportSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	reporterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReportSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Report(c.Request.Context(), sessionID, req, reporterID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "report received",
	})
}

// @Summary List session reports
// @Description List abuse reports filed against a negotiation session (moderators only)
// @Tags negotiations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.ReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /negotiations/{id}/reports [get]
func (h *NegotiationHandler) ListSessionReports(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	reportsRM, err := h.queries.ListReports(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.ReportResponse, len(reportsRM))
	for i := range reportsRM {
		response[i] = resdto.FromReportView(&reportsRM[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *NegotiationHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *NegotiationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNegotiationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Negotiation not found",
		})
	case errors.Is(err, errs.ErrNotParticipant), errors.Is(err, errs.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed for this negotiation",
		})
	case errors.Is(err, errs.ErrSessionExpired):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Negotiation has expired",
		})
	case errors.Is(err, errs.ErrSessionTerminal):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Negotiation is already closed",
		})
	case errors.Is(err, errs.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Message rate limit exceeded",
		})
	case errors.Is(err, errs.ErrNoOfferToAccept):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No offer to accept",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
