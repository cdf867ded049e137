//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cart-recovery/internal/domain/cart"
	"cart-recovery/internal/handler/api"
	"cart-recovery/internal/usecase/commands"
	"cart-recovery/internal/usecase/queries"
	commandsmock "cart-recovery/tests/mock/commands"
	queriesmock "cart-recovery/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockTrack   *commandsmock.MockTrackCommands
	mockQueries *queriesmock.MockCartQueries
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTrack = commandsmock.NewMockTrackCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	handler := api.NewCartHandler(s.mockTrack, s.mockQueries)

	s.router.POST("/api/carts/track", handler.Track)
	s.router.GET("/api/admin/carts/stats", handler.Stats)
	s.router.GET("/api/admin/carts/recent", handler.Recent)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CartHandlerTestSuite) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CartHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CartHandlerTestSuite) TestTrackSuccess() {
	rec, err := cart.NewRecord("tok-1", "jane@example.com",
		cart.Items{{ProductID: 42, Name: "Widget", Quantity: 2}}, 1998, "USD",
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	s.mockTrack.EXPECT().Track(gomock.Any(), commands.TrackCartParams{
		Token:      "tok-1",
		Email:      "jane@example.com",
		Items:      cart.Items{{ProductID: 42, Name: "Widget", Quantity: 2}},
		TotalCents: 1998,
		Currency:   "USD",
	}).Return(rec, nil)

	w := s.postJSON("/api/carts/track", `{
		"token": "tok-1",
		"email": "jane@example.com",
		"items": [{"product_id": 42, "name": "Widget", "quantity": 2}],
		"total_cents": 1998,
		"currency": "USD"
	}`)

	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("tok-1", resp["token"])
	s.Equal("active", resp["status"])
}

func (s *CartHandlerTestSuite) TestTrackValidation() {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing token", body: `{"currency": "USD"}`},
		{name: "bad email", body: `{"token": "tok-1", "email": "not-an-email", "currency": "USD"}`},
		{name: "bad currency length", body: `{"token": "tok-1", "currency": "US"}`},
		{name: "negative total", body: `{"token": "tok-1", "currency": "USD", "total_cents": -1}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.postJSON("/api/carts/track", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *CartHandlerTestSuite) TestTrackRejectedByCommand() {
	s.mockTrack.EXPECT().Track(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrInvalidTrackRequest)

	w := s.postJSON("/api/carts/track", `{"token": "tok-1", "currency": "USD"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CartHandlerTestSuite) TestStats() {
	s.mockQueries.EXPECT().Stats(gomock.Any()).Return(&queries.StatsView{
		Abandoned:             6,
		Recovered:             2,
		RecoveryRate:          25,
		RecoveredRevenueCents: 4500,
	}, nil)

	w := s.get("/api/admin/carts/stats")

	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.EqualValues(6, resp["abandoned"])
	s.EqualValues(2, resp["recovered"])
	s.EqualValues(25, resp["recovery_rate"])
	s.EqualValues(4500, resp["recovered_revenue_cents"])
}

func (s *CartHandlerTestSuite) TestStatsFailure() {
	s.mockQueries.EXPECT().Stats(gomock.Any()).Return(nil, queries.ErrReportFailed)

	w := s.get("/api/admin/carts/stats")
	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *CartHandlerTestSuite) TestRecent() {
	activity := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().Recent(gomock.Any(), 10).Return([]*queries.CartListItem{
		{Email: "jane@example.com", Status: "abandoned", TotalCents: 1998, Currency: "USD", LastActivityAt: &activity},
	}, nil)

	w := s.get("/api/admin/carts/recent?limit=10")

	s.Equal(http.StatusOK, w.Code)

	var resp []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp, 1)
	s.Equal("jane@example.com", resp[0]["email"])
	s.Equal("abandoned", resp[0]["status"])
}

func (s *CartHandlerTestSuite) TestRecentDefaultLimit() {
	s.mockQueries.EXPECT().Recent(gomock.Any(), 25).Return(nil, nil)

	w := s.get("/api/admin/carts/recent")
	s.Equal(http.StatusOK, w.Code)
}

func TestCartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}
