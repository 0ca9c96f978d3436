package wfs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func testClient(baseURL string) *Client {
	return NewClient(baseURL, testAPIKey, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// squareAround returns a GeoJSON polygon ring centered on the given
// EPSG:5186 coordinate.
func squareAround(x, y float64) string {
	return fmt.Sprintf(`[[[%.1f,%.1f],[%.1f,%.1f],[%.1f,%.1f],[%.1f,%.1f]]]`,
		x-100, y-100, x+100, y-100, x+100, y+100, x-100, y+100)
}

func TestClient_Parks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, testAPIKey, q.Get("apiKey"))
		assert.Equal(t, "WFS", q.Get("service"))
		assert.Equal(t, "GetFeature", q.Get("request"))
		assert.Equal(t, "application/json", q.Get("outputFormat"))
		assert.Equal(t, "500", q.Get("maxFeatures"))
		assert.Equal(t, "sgg_nm LIKE '%수원시%'", q.Get("CQL_FILTER"))

		w.Header().Set("Content-Type", "application/json")
		// Polygon centered on the projection's false origin, which maps
		// back to exactly (38.0, 127.0).
		_, err := w.Write([]byte(`{
			"features": [
				{
					"properties": {"uid": "P-001", "sgg_nm": "수원시", "lclsf_nm": "도시공원", "mclsf_nm": "근린공원", "area": 12000, "biotop_area": 9500},
					"geometry": {"coordinates": ` + squareAround(200000, 600000) + `}
				}
			]
		}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	parks, err := c.Parks(context.Background(), "수원시", 500)
	require.NoError(t, err)
	require.Len(t, parks, 1)

	p := parks[0]
	assert.Equal(t, "P-001", p.UID)
	assert.Equal(t, "수원시", p.District)
	assert.Equal(t, "도시공원", p.Category)
	assert.Equal(t, "근린공원", p.Subcategory)
	assert.Equal(t, 9500.0, p.Area, "biotop_area takes precedence over area")
	assert.InDelta(t, 38.0, p.Latitude, 0.001)
	assert.InDelta(t, 127.0, p.Longitude, 0.001)
}

func TestClient_Parks_AreaFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [
				{
					"properties": {"uid": "P-002", "sgg_nm": "성남시", "area": 7000},
					"geometry": {"coordinates": ` + squareAround(200000, 600000) + `}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	parks, err := c.Parks(context.Background(), "", 500)
	require.NoError(t, err)
	require.Len(t, parks, 1)
	assert.Equal(t, 7000.0, parks[0].Area)
}

func TestClient_Parks_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("CQL_FILTER"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	parks, err := c.Parks(context.Background(), "", 500)
	require.NoError(t, err)
	assert.Empty(t, parks)
}

func TestClient_Parks_SkipsBadGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [
				{
					"properties": {"uid": "P-003", "sgg_nm": "고양시"},
					"geometry": {"coordinates": []}
				},
				{
					"properties": {"uid": "P-004", "sgg_nm": "고양시", "area": 5500},
					"geometry": {"coordinates": ` + squareAround(200000, 600000) + `}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	parks, err := c.Parks(context.Background(), "고양시", 500)
	require.NoError(t, err)
	require.Len(t, parks, 1)
	assert.Equal(t, "P-004", parks[0].UID)
}

func TestClient_Parks_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`<ServiceExceptionReport>invalid key</ServiceExceptionReport>`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Parks(context.Background(), "수원시", 500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClient_Parks_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Parks(context.Background(), "수원시", 500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
