// Package wfs implements a client for the Gyeonggi Climate Platform WFS API
// (park, green-belt, and biotope layers) plus a read-through cache.
package wfs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/greenseoul/urban-cooling-engine/internal/provider"
)

// parkTypeName is the WFS feature type for the urban park layer.
const parkTypeName = "park"

// Client implements provider.ParkSource against the climate platform.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a WFS client.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// featureCollection mirrors the GeoJSON GetFeature response. Geometry
// coordinates arrive in EPSG:5186 and are converted on parse.
type featureCollection struct {
	Features []struct {
		Properties struct {
			UID        string   `json:"uid"`
			SggNm      string   `json:"sgg_nm"`
			LclsfNm    string   `json:"lclsf_nm"`
			MclsfNm    string   `json:"mclsf_nm"`
			Area       *float64 `json:"area"`
			BiotopArea *float64 `json:"biotop_area"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Parks fetches park features, optionally CQL-filtered by district name.
func (c *Client) Parks(ctx context.Context, districtFilter string, maxFeatures int) ([]provider.ParkRecord, error) {
	params := url.Values{
		"apiKey":       {c.apiKey},
		"service":      {"WFS"},
		"version":      {"1.1.0"},
		"request":      {"GetFeature"},
		"typeName":     {parkTypeName},
		"outputFormat": {"application/json"},
		"maxFeatures":  {fmt.Sprintf("%d", maxFeatures)},
	}
	if districtFilter != "" {
		params.Set("CQL_FILTER", fmt.Sprintf("sgg_nm LIKE '%%%s%%'", districtFilter))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wfs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("wfs request: status %d: %s", resp.StatusCode, body)
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode wfs response: %w", err)
	}

	parks := make([]provider.ParkRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		x, y, ok := centroid(f.Geometry.Coordinates)
		if !ok {
			// Features without usable geometry cannot be placed; skip.
			continue
		}
		lat, lon := epsg5186ToWGS84(x, y)

		var area float64
		switch {
		case f.Properties.BiotopArea != nil:
			area = *f.Properties.BiotopArea
		case f.Properties.Area != nil:
			area = *f.Properties.Area
		}

		parks = append(parks, provider.ParkRecord{
			UID:         f.Properties.UID,
			District:    f.Properties.SggNm,
			Category:    f.Properties.LclsfNm,
			Subcategory: f.Properties.MclsfNm,
			Area:        area,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	c.logger.Debug("wfs parks fetched", "count", len(parks), "filter", districtFilter)
	return parks, nil
}
