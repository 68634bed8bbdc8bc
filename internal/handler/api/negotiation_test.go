//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"haggle-service/internal/domain/identity"
	"haggle-service/internal/handler/api"
	resdto "haggle-service/internal/handler/dto/response"
	"haggle-service/internal/handler/middleware"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/queries"
	"haggle-service/tests/common/builder"
	"haggle-service/tests/common/httptest"
	"haggle-service/tests/common/testutil"
	mock_commands "haggle-service/tests/mock/commands"
	mock_queries "haggle-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NegotiationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *mock_commands.MockNegotiationCommands
	mockQueries  *mock_queries.MockNegotiationQueries
	handler      *api.NegotiationHandler
	userID       uuid.UUID
	userRole     identity.Role
}

func (s *NegotiationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockNegotiationCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockNegotiationQueries(s.mockCtrl)
	s.handler = api.NewNegotiationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.userRole = identity.RoleUser

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
		c.Next()
	}
	requireAdmin := middleware.NewAuthMiddleware(nil).RequireAdmin()

	s.router.POST("/negotiations", authMiddleware, s.handler.OpenNegotiation)
	s.router.GET("/negotiations", authMiddleware, s.handler.ListNegotiations)
	s.router.GET("/negotiations/:id", authMiddleware, s.handler.GetNegotiation)
	s.router.POST("/negotiations/:id/messages", authMiddleware, s.handler.PostMessage)
	s.router.POST("/negotiations/:id/accept", authMiddleware, s.handler.AcceptOffer)
	s.router.POST("/negotiations/:id/reject", authMiddleware, s.handler.RejectOffer)
	s.router.POST("/negotiations/:id/report", authMiddleware, s.handler.ReportSession)
	s.router.GET("/negotiations/:id/reports", authMiddleware, requireAdmin, s.handler.ListSessionReports)
}

func (s *NegotiationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNegotiationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NegotiationHandlerTestSuite))
}

type negotiationTestCase struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestOpenNegotiation
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestOpenNegotiation() {
	url := "/negotiations"

	b := builder.NewSessionBuilder()
	reqBody := b.BuildOpenRequestDTO()
	returnView := b.BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), reqBody, s.userID).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.MinimumPriceCents, resp.MinimumPriceCents)
	})

	s.Run("validation", func() {
		cases := []negotiationTestCase{
			{name: "missing field: item_id", mutate: testutil.Field("item_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: seller_id", mutate: testutil.Field("seller_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: original_price_cents", mutate: testutil.Field("original_price_cents", nil), expectCode: http.StatusBadRequest},
			{name: "zero price", mutate: testutil.Field("original_price_cents", 0), expectCode: http.StatusBadRequest},
			{name: "negative price", mutate: testutil.Field("original_price_cents", -100), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				s.Equal(tc.expectCode, w.Code)
			})
		}
	})

	s.Run("duplicate active session", func() {
		s.mockCommands.EXPECT().Open(gomock.Any(), reqBody, s.userID).Return(nil, errs.ErrDuplicateActiveSession)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "active negotiation already exists")
	})

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

// ================================================================================
// TestGetNegotiation
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestGetNegotiation() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String()

	s.Run("success", func() {
		detail := &queries.SessionDetailView{
			Session:  *b.BuildView(),
			Messages: []queries.MessageView{*b.BuildMessageView(b.BuyerID)},
		}
		s.mockQueries.EXPECT().GetSession(gomock.Any(), b.ID, s.userID, identity.RoleUser).
			Return(detail, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp resdto.SessionDetailResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.ID, resp.Session.ID)
		s.Len(resp.Messages, 1)
	})

	s.Run("not a participant", func() {
		s.mockQueries.EXPECT().GetSession(gomock.Any(), b.ID, s.userID, identity.RoleUser).
			Return(nil, errs.ErrNotParticipant)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetSession(gomock.Any(), b.ID, s.userID, identity.RoleUser).
			Return(nil, errs.ErrNegotiationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/negotiations/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestPostMessage
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestPostMessage() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String() + "/messages"
	reqBody := b.BuildPostMessageRequestDTO()

	s.Run("success", func() {
		returnView := b.BuildMessageView(s.userID)
		s.mockCommands.EXPECT().PostMessage(gomock.Any(), b.ID, reqBody, s.userID).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
	})

	s.Run("validation", func() {
		cases := []negotiationTestCase{
			{name: "missing field: type", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: content", mutate: testutil.Field("content", nil), expectCode: http.StatusBadRequest},
			{name: "content too long", mutate: testutil.Field("content", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
			{name: "zero offer", mutate: testutil.Field("price_offer_cents", 0), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				s.Equal(tc.expectCode, w.Code)
			})
		}
	})

	s.Run("domain errors map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "rate limited", err: errs.ErrRateLimited, expectCode: http.StatusTooManyRequests},
			{name: "expired", err: errs.ErrSessionExpired, expectCode: http.StatusConflict},
			{name: "closed", err: errs.ErrSessionTerminal, expectCode: http.StatusConflict},
			{name: "outsider", err: errs.ErrNotParticipant, expectCode: http.StatusForbidden},
			{name: "not found", err: errs.ErrNegotiationNotFound, expectCode: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PostMessage(gomock.Any(), b.ID, reqBody, s.userID).Return(nil, tc.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				s.Equal(tc.expectCode, w.Code)
			})
		}
	})
}

// ================================================================================
// TestAcceptOffer
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestAcceptOffer() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String() + "/accept"

	s.Run("success returns the settlement token", func() {
		tokenView := builder.NewTokenBuilder().BuildView()
		s.mockCommands.EXPECT().Accept(gomock.Any(), b.ID, s.userID).Return(tokenView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(tokenView.Code, resp.Code)
		s.Equal(tokenView.DiscountedPriceCents, resp.DiscountedPriceCents)
	})

	s.Run("buyer cannot accept", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), b.ID, s.userID).Return(nil, errs.ErrNotAuthorized)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("no offer to accept", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), b.ID, s.userID).Return(nil, errs.ErrNoOfferToAccept)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

// ================================================================================
// TestRejectOffer
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestRejectOffer() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String() + "/reject"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), b.ID, s.userID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("already closed", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), b.ID, s.userID).Return(errs.ErrSessionTerminal)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, w.Code)
	})
}

// ================================================================================
// TestReportSession
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestReportSession() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String() + "/report"
	reqBody := map[string]any{"reason": "asked to pay off the platform"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Report(gomock.Any(), b.ID, gomock.Any(), s.userID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusAccepted, w.Code)
	})

	s.Run("missing reason", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestListNegotiations
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestListNegotiations() {
	s.Run("returns the caller's sessions", func() {
		b := builder.NewSessionBuilder()
		listItem := b.BuildListItem()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 20).
			Return([]*queries.SessionListItem{listItem}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/negotiations", nil, "token")

		var resp []resdto.SessionListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(listItem.ID, resp[0].ID)
	})

	s.Run("custom limit", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 5).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/negotiations?limit=5", nil, "token")
		s.Equal(http.StatusOK, w.Code)
	})
}

// ================================================================================
// TestListSessionReports
// ================================================================================

func (s *NegotiationHandlerTestSuite) TestListSessionReports() {
	b := builder.NewSessionBuilder()
	url := "/negotiations/" + b.ID.String() + "/reports"

	s.Run("admin sees reports", func() {
		s.userRole = identity.RoleAdmin
		report := queries.ReportView{
			ID:         uuid.New(),
			SessionID:  b.ID,
			ReporterID: b.SellerID,
			Reason:     "buyer keeps pushing for an off-platform deal",
			CreatedAt:  b.Now,
		}
		s.mockQueries.EXPECT().ListReports(gomock.Any(), b.ID).Return([]queries.ReportView{report}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp []resdto.ReportResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(report.Reason, resp[0].Reason)
	})

	s.Run("regular user is forbidden", func() {
		s.userRole = identity.RoleUser

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("session not found", func() {
		s.userRole = identity.RoleAdmin
		s.mockQueries.EXPECT().ListReports(gomock.Any(), b.ID).Return(nil, errs.ErrNegotiationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
