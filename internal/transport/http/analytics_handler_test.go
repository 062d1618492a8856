package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postVolatility(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/volatility", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVolatilityEndpoint(t *testing.T) {
	dataDir := t.TempDir()
	content := "Date,Close\n2024-01-02,100\n2024-01-03,101\n2024-01-04,102\n2024-01-05,103\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "prices.csv"), []byte(content), 0o644))

	router := newTestRouter(t, dataDir)
	rec := postVolatility(t, router, `{"file":"prices.csv","lookback":2}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp VolatilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "prices.csv", resp.Source)
	assert.Equal(t, "Close", resp.Column)
	assert.Equal(t, 2, resp.Lookback)
	require.Len(t, resp.Points, 4)

	assert.Equal(t, "2024-01-02", resp.Points[0].Date)
	// warmup positions carry the configured default
	assert.Equal(t, 0.25, resp.Points[0].Volatility)
	assert.Equal(t, 0.25, resp.Points[1].Volatility)
	assert.Greater(t, resp.Points[2].Volatility, 0.0)
}

func TestVolatilityEndpointRenamesColumns(t *testing.T) {
	dataDir := t.TempDir()
	content := "TradingDate,Closing Price\n2024-01-02,100\n2024-01-03,101\n2024-01-04,102\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "prices.csv"), []byte(content), 0o644))

	router := newTestRouter(t, dataDir)
	rec := postVolatility(t, router,
		`{"file":"prices.csv","lookback":2,"rename":{"TradingDate":"Date","Closing Price":"Close"}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestVolatilityEndpointErrors(t *testing.T) {
	dataDir := t.TempDir()
	content := "Date,Close\n2024-01-02,100\n2024-01-03,101\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "prices.csv"), []byte(content), 0o644))

	router := newTestRouter(t, dataDir)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed_json", body: `{"file":`, wantStatus: http.StatusBadRequest},
		{name: "missing_file_field", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "lookback_too_small", body: `{"file":"prices.csv","lookback":1}`, wantStatus: http.StatusBadRequest},
		{name: "path_traversal", body: `{"file":"../secrets.csv"}`, wantStatus: http.StatusBadRequest},
		{name: "absolute_path", body: `{"file":"/etc/passwd"}`, wantStatus: http.StatusBadRequest},
		{name: "file_not_found", body: `{"file":"absent.csv"}`, wantStatus: http.StatusInternalServerError},
		{name: "unknown_column", body: `{"file":"prices.csv","column":"Open"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postVolatility(t, router, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
