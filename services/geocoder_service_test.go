package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(baseURL string) *APINinjasGeocoder {
	return &APINinjasGeocoder{
		apiKey:  "test-key",
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Second},
	}
}

func TestGeocoderLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Assam", r.URL.Query().Get("city"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"latitude":26.2006,"longitude":92.9376,"name":"Assam"}]`))
	}))
	defer srv.Close()

	lat, lon, err := newTestGeocoder(srv.URL).Lookup(context.Background(), "Assam")
	require.NoError(t, err)
	assert.Equal(t, 26.2006, lat)
	assert.Equal(t, 92.9376, lon)
}

func TestGeocoderLookup_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, _, err := newTestGeocoder(srv.URL).Lookup(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestGeocoderLookup_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := newTestGeocoder(srv.URL).Lookup(context.Background(), "Assam")
	assert.Error(t, err)
}

func TestEarthquakeFeed_ParsesUSGS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[
			{"id":"us1","properties":{"mag":6.4,"place":"Himalayan region","time":1700000000000},
			 "geometry":{"coordinates":[79.0,30.0,10.0]}},
			{"id":"us2","properties":{"mag":3.1,"place":"offshore","time":1700000100000},
			 "geometry":{"coordinates":[92.0,26.0,5.0]}}
		]}`))
	}))
	defer srv.Close()

	svc := &EarthquakeService{feedURL: srv.URL, client: &http.Client{Timeout: time.Second}}
	quakes, err := svc.RecentEarthquakes(context.Background())
	require.NoError(t, err)
	require.Len(t, quakes, 2)
	assert.Equal(t, "high", quakes[0].Severity)
	assert.Equal(t, "low", quakes[1].Severity)
	assert.Equal(t, "Himalayan region", quakes[0].Location)
}
