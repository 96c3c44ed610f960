package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Geocoder resolves a free-text place name to coordinates. A failed lookup
// never aborts alert creation: callers fall back to (0,0) and log.
type Geocoder interface {
	Lookup(ctx context.Context, location string) (lat, lon float64, err error)
}

// APINinjasGeocoder calls the API-Ninjas geocoding endpoint.
type APINinjasGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAPINinjasGeocoder() *APINinjasGeocoder {
	return &APINinjasGeocoder{
		apiKey:  os.Getenv("GEOCODING_API_KEY"),
		baseURL: "https://api.api-ninjas.com/v1/geocoding",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (g *APINinjasGeocoder) Lookup(ctx context.Context, location string) (float64, float64, error) {
	u := fmt.Sprintf("%s?city=%s", g.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("X-Api-Key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to call geocoding API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read geocoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding API error %d: %s", resp.StatusCode, string(body))
	}

	var results []geocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, fmt.Errorf("failed to parse geocoding JSON: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no coordinates found for %q", location)
	}

	return results[0].Latitude, results[0].Longitude, nil
}
