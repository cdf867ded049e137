//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cart-recovery/internal/handler/api"
	"cart-recovery/internal/infra"
	"cart-recovery/internal/pkg/config"
	"cart-recovery/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// optionsStub is an in-memory options table for wiring real settings and
// template services under the handler.
type optionsStub struct {
	values map[string][]byte
}

func newOptionsStub() *optionsStub {
	return &optionsStub{values: map[string][]byte{}}
}

func (f *optionsStub) Get(_ context.Context, name string) ([]byte, error) {
	raw, ok := f.values[name]
	if !ok {
		return nil, infra.WrapRepoErr("option not found", errors.New("no rows"), infra.KindNotFound)
	}
	return raw, nil
}

func (f *optionsStub) Set(_ context.Context, name string, value []byte) error {
	f.values[name] = value
	return nil
}

type SettingsHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	options *optionsStub
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.options = newOptionsStub()

	cfg := config.NewTestConfig()
	handler := api.NewSettingsHandler(
		usecase.NewSettingsService(s.options),
		usecase.NewTemplateService(s.options, cfg),
	)

	s.router.GET("/api/admin/settings", handler.GetSettings)
	s.router.PUT("/api/admin/settings", handler.UpdateSettings)
	s.router.GET("/api/admin/templates", handler.GetTemplates)
	s.router.PUT("/api/admin/templates", handler.UpdateTemplates)
}

func (s *SettingsHandlerTestSuite) request(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SettingsHandlerTestSuite) TestGetSettingsReturnsDefaults() {
	w := s.request(http.MethodGet, "/api/admin/settings", "")

	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.EqualValues(45, resp["abandon_minutes"])
	s.EqualValues(30, resp["retention_days"])
	s.Equal(true, resp["enable_emails"])
	s.Equal("checkout", resp["restore_redirect"])
}

func (s *SettingsHandlerTestSuite) TestUpdateSettingsRoundTrip() {
	w := s.request(http.MethodPut, "/api/admin/settings", `{
		"abandon_minutes": 90,
		"retention_days": 14,
		"enable_emails": false,
		"email_steps": {"1": 2, "2": 48},
		"restore_redirect": "cart"
	}`)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.request(http.MethodGet, "/api/admin/settings", "")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.EqualValues(90, resp["abandon_minutes"])
	s.Equal(false, resp["enable_emails"])
	s.Equal("cart", resp["restore_redirect"])
}

func (s *SettingsHandlerTestSuite) TestUpdateSettingsValidation() {
	tests := []struct {
		name string
		body string
		code int
	}{
		{
			name: "unknown redirect target",
			body: `{"abandon_minutes": 45, "retention_days": 30, "enable_emails": true, "email_steps": {"1": 1}, "restore_redirect": "homepage"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "zero abandon_minutes",
			body: `{"abandon_minutes": 0, "retention_days": 30, "enable_emails": true, "email_steps": {"1": 1}, "restore_redirect": "cart"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "bad step delay",
			body: `{"abandon_minutes": 45, "retention_days": 30, "enable_emails": true, "email_steps": {"1": 0}, "restore_redirect": "cart"}`,
			code: http.StatusUnprocessableEntity,
		},
		{
			name: "malformed json",
			body: `{`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.request(http.MethodPut, "/api/admin/settings", tt.body)
			s.Equal(tt.code, w.Code)
		})
	}
}

func (s *SettingsHandlerTestSuite) TestGetTemplatesReturnsDefaults() {
	w := s.request(http.MethodGet, "/api/admin/templates", "")

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Templates map[string]struct {
			Subject string `json:"subject"`
			Body    string `json:"body"`
		} `json:"templates"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Templates, 3)
	s.Equal("You left items in your cart", resp.Templates["1"].Subject)
}

func (s *SettingsHandlerTestSuite) TestUpdateTemplatesRoundTrip() {
	w := s.request(http.MethodPut, "/api/admin/templates", `{
		"templates": {"2": {"subject": "Custom subject", "body": "Link: {restore_link}"}}
	}`)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.request(http.MethodGet, "/api/admin/templates", "")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Templates map[string]struct {
			Subject string `json:"subject"`
		} `json:"templates"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Custom subject", resp.Templates["2"].Subject)
	// Steps not mentioned in the update keep their defaults.
	s.Equal("You left items in your cart", resp.Templates["1"].Subject)
}

func TestSettingsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
