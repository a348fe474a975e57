// Package geocode 封装地理编码协作方（Nominatim 风格的 HTTP 服务）
// 引擎只在订单缺少坐标时回填，编码失败不是致命错误
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Result 一次地理编码的结果
type Result struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// Geocoder provides address-to-coordinates conversion
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Result, error)
}

type httpGeocoder struct {
	baseURL    string
	httpClient *http.Client
}

type searchResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient 创建地理编码客户端
func NewClient(baseURL string, timeout time.Duration) Geocoder {
	return &httpGeocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode 将地址/地名转换为坐标，无结果时返回错误
func (g *httpGeocoder) Geocode(ctx context.Context, query string) (*Result, error) {
	queryURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "DeliveryEase-Dispatch/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: HTTP %d", resp.StatusCode)
	}

	var results []searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocode result for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	log.Debug().
		Str("query", query).
		Float64("latitude", lat).
		Float64("longitude", lng).
		Msg("geocoded locality")

	return &Result{
		Latitude:    lat,
		Longitude:   lng,
		DisplayName: results[0].DisplayName,
	}, nil
}
