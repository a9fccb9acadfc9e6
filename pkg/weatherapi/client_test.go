package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/ChandravardhanKothi/agro-advisory-service/pkg/testing"
)

func TestClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Guntur",
			"main": {"temp": 31.5, "humidity": 72, "pressure": 1004},
			"wind": {"speed": 3.4, "deg": 210},
			"rain": {"1h": 0.6},
			"clouds": {"all": 40},
			"weather": [{"main": "Clouds", "description": "scattered clouds"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	obs, err := client.Current(context.Background(), 16.3, 80.4)
	require.NoError(t, err)

	assert.Equal(t, "Guntur", obs.Location)
	assert.Equal(t, 31.5, obs.Temperature)
	assert.Equal(t, 72.0, obs.Humidity)
	assert.Equal(t, 1004.0, obs.Pressure)
	assert.Equal(t, 3.4, obs.WindSpeed)
	assert.Equal(t, 210.0, obs.WindDirection)
	assert.Equal(t, 0.6, obs.Precipitation)
	assert.Equal(t, 40.0, obs.CloudCover)
	assert.Equal(t, "Clouds", obs.Condition)
	assert.Equal(t, "scattered clouds", obs.Description)
	assert.Equal(t, 16.3, obs.Latitude)
	assert.Equal(t, 80.4, obs.Longitude)
}

func TestClientCurrentProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)

	_, err := client.Current(context.Background(), 16.3, 80.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClientForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "16", r.URL.Query().Get("cnt")) // 2 days * 8 slots

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"list": [
				{"dt_txt": "2026-08-26 09:00:00", "main": {"temp": 24, "humidity": 60}, "rain": {"3h": 1}, "weather": [{"description": "light rain"}]},
				{"dt_txt": "2026-08-26 12:00:00", "main": {"temp": 28, "humidity": 55}, "weather": [{"description": "light rain"}]},
				{"dt_txt": "2026-08-27 09:00:00", "main": {"temp": 22, "humidity": 70}, "weather": [{"description": "clear sky"}]}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	forecast, err := client.Forecast(context.Background(), 16.3, 80.4, 2)
	require.NoError(t, err)
	require.Len(t, forecast, 2)

	assert.Equal(t, "2026-08-26", forecast[0].Date)
	assert.Equal(t, 24.0, forecast[0].Temperature.Min)
	assert.Equal(t, 28.0, forecast[0].Temperature.Max)
	assert.InDelta(t, 1.0, forecast[0].Precipitation, 1e-9)
	assert.Equal(t, "light rain", forecast[0].Condition)
	assert.Equal(t, "clear sky", forecast[1].Condition)
}
