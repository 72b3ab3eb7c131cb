package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDBService struct {
	health map[string]string
}

func (s *stubDBService) Health() map[string]string { return s.health }
func (s *stubDBService) Close()                    {}
func (s *stubDBService) Pool() *pgxpool.Pool       { return nil }

func TestGetServerStatusHandler(t *testing.T) {
	db = &stubDBService{health: map[string]string{"status": "up"}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, GetServerStatusHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "online", body["status"])

	// The CPU section must always be present and well-formed, even when
	// sampling fails and no usage figure is available.
	cpuSection, ok := body["cpu"].(map[string]any)
	require.True(t, ok)
	usage, ok := cpuSection["usage_percent"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, usage)

	dbSection, ok := body["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "up", dbSection["status"])
}
