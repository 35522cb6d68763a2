package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/api"
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/de-tools/dummy-atlas/pkg/services/yoy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) Config {
	t.Helper()
	registry, err := profiles.NewRegistry(nil)
	require.NoError(t, err)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	builder := dataset.NewBuilder(registry, yoy.NewAugmenter(),
		dataset.WithClock(func() time.Time { return now }))

	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Builder:  builder,
			Registry: registry,
			Defaults: domain.Params{Category: domain.CategoryCafe, Years: 2, MaxRows: 365},
			Logger:   zerolog.New(zerolog.NewTestWriter(t)),
		},
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := httptest.NewServer(ConfigureRouter(newTestConfig(t)))
	defer testServer.Close()

	tests := []struct {
		name            string
		path            string
		expectedStatus  int
		expectedType    string
		expectedContent string
	}{
		{
			name:            "Dashboard",
			path:            "/",
			expectedStatus:  http.StatusOK,
			expectedType:    "text/html; charset=utf-8",
			expectedContent: "イベント発生総数",
		},
		{
			name:            "Chart",
			path:            "/chart?seed=4",
			expectedStatus:  http.StatusOK,
			expectedType:    "text/html; charset=utf-8",
			expectedContent: "echarts",
		},
		{
			name:            "ListCategories",
			path:            "/api/v1/categories",
			expectedStatus:  http.StatusOK,
			expectedType:    "application/json",
			expectedContent: `"slug":"family_restaurant"`,
		},
		{
			name:            "GetDataset",
			path:            "/api/v1/dataset?category=hotel&max_rows=3&seed=1",
			expectedStatus:  http.StatusOK,
			expectedType:    "application/json",
			expectedContent: `"category":"hotel"`,
		},
		{
			name:            "DownloadCSV",
			path:            "/api/v1/dataset.csv?max_rows=3&seed=1",
			expectedStatus:  http.StatusOK,
			expectedType:    "text/csv; charset=utf-8",
			expectedContent: "date,event,weather",
		},
		{
			name:           "DownloadXLSX",
			path:           "/api/v1/dataset.xlsx?max_rows=3&seed=1",
			expectedStatus: http.StatusOK,
			expectedType:   "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		{
			name:            "GetDataset_InvalidYears",
			path:            "/api/v1/dataset?years=9",
			expectedStatus:  http.StatusBadRequest,
			expectedType:    "text/plain; charset=utf-8",
			expectedContent: "invalid parameters",
		},
		{
			name:           "UnknownRoute",
			path:           "/api/v1/workspaces",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			if tc.expectedType != "" {
				assert.Equal(t, tc.expectedType, resp.Header.Get("Content-Type"))
			}

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")
			assert.True(t, strings.Contains(string(body), tc.expectedContent),
				"body does not contain %q", tc.expectedContent)
		})
	}
}

func TestWebAPI_DefaultsApplied(t *testing.T) {
	testServer := httptest.NewServer(ConfigureRouter(newTestConfig(t)))
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/dataset")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.Dataset
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "cafe", got.Params.Category)
	assert.Equal(t, 2, got.Params.Years)
	assert.Len(t, got.Records, 365)
	assert.NotZero(t, got.Params.Seed)
}

func TestNewWebAPI_DefaultShutdownTimeout(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.ShutdownTimeout = 0

	webAPI := NewWebAPI(cfg)

	assert.Equal(t, defaultShutdownTimeout, webAPI.shutdownTimeout)
	assert.Equal(t, ":8080", webAPI.server.Addr)
}
