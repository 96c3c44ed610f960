package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EarthquakeService wraps the USGS all-day GeoJSON feed.
type EarthquakeService struct {
	feedURL string
	client  *http.Client
}

func NewEarthquakeService() *EarthquakeService {
	return &EarthquakeService{
		feedURL: "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type Earthquake struct {
	ID          string    `json:"id"`
	Magnitude   float64   `json:"magnitude"`
	Location    string    `json:"location"`
	Time        time.Time `json:"time"`
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
}

type usgsFeed struct {
	Features []struct {
		ID         string `json:"id"`
		Properties struct {
			Mag   float64 `json:"mag"`
			Place string  `json:"place"`
			Time  int64   `json:"time"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (s *EarthquakeService) RecentEarthquakes(ctx context.Context) ([]Earthquake, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create USGS request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call USGS feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USGS response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USGS feed error %d", resp.StatusCode)
	}

	var feed usgsFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse USGS JSON: %w", err)
	}

	quakes := make([]Earthquake, 0, len(feed.Features))
	for _, f := range feed.Features {
		quakes = append(quakes, Earthquake{
			ID:          f.ID,
			Magnitude:   f.Properties.Mag,
			Location:    f.Properties.Place,
			Time:        time.UnixMilli(f.Properties.Time),
			Coordinates: f.Geometry.Coordinates,
			Type:        "earthquake",
			Severity:    earthquakeSeverity(f.Properties.Mag),
		})
	}
	return quakes, nil
}

func earthquakeSeverity(mag float64) string {
	switch {
	case mag >= 7:
		return "critical"
	case mag >= 6:
		return "high"
	case mag >= 5:
		return "medium"
	default:
		return "low"
	}
}
