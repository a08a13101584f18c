package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galactic-marines/gm-automation/internal/handlers"
	"github.com/galactic-marines/gm-automation/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	AdminToken = "test-admin-token"
	CronSecret = "test-cron-secret"
)

type ServiceMocks struct {
	PlannedServiceMock    *mocks.MockPlannedMessageService
	AktenServiceMock      *mocks.MockAktenService
	AutomationServiceMock *mocks.MockAutomationService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, router *gin.Engine, ctrl *gomock.Controller) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		PlannedServiceMock:    mocks.NewMockPlannedMessageService(ctrl),
		AktenServiceMock:      mocks.NewMockAktenService(ctrl),
		AutomationServiceMock: mocks.NewMockAutomationService(ctrl),
	}

	router = gin.New()
	handlers.New(m.PlannedServiceMock, m.AktenServiceMock, m.AutomationServiceMock, AdminToken, CronSecret).AddRoutes(router)

	return
}

// CreateRequest builds a request carrying token as bearer and body as JSON.
// A nil body sends no payload.
func CreateRequest(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func Serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
