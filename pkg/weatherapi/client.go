// Package weatherapi is the OpenWeather REST client: current conditions and
// a 3-hourly forecast aggregated into daily summaries.
package weatherapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

// Observation is the provider-neutral shape of current conditions.
type Observation struct {
	Location      string  `json:"location"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Precipitation float64 `json:"precipitation"`
	CloudCover    float64 `json:"cloud_cover"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
}

// ForecastEntry is one 3-hourly forecast slot.
type ForecastEntry struct {
	Date          string // YYYY-MM-DD
	Temperature   float64
	Humidity      float64
	Precipitation float64
	Condition     string
}

type Provider interface {
	Current(ctx context.Context, latitude, longitude float64) (*Observation, error)
	Forecast(ctx context.Context, latitude, longitude float64, days int) ([]DailyForecast, error)
}

type Client struct {
	client  *resty.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  resty.New(),
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

type openWeatherCurrent struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Observation, error) {
	var payload openWeatherCurrent

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(latitude, 'f', -1, 64),
			"lon":   strconv.FormatFloat(longitude, 'f', -1, 64),
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&payload).
		Get(c.baseURL + "/weather")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode())
	}

	obs := &Observation{
		Location:      payload.Name,
		Latitude:      latitude,
		Longitude:     longitude,
		Temperature:   payload.Main.Temp,
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Precipitation: payload.Rain.OneHour,
		CloudCover:    payload.Clouds.All,
	}
	if len(payload.Weather) > 0 {
		obs.Condition = payload.Weather[0].Main
		obs.Description = payload.Weather[0].Description
	}

	return obs, nil
}

type openWeatherForecast struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Rain struct {
			ThreeHours float64 `json:"3h"`
		} `json:"rain"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *Client) Forecast(ctx context.Context, latitude, longitude float64, days int) ([]DailyForecast, error) {
	var payload openWeatherForecast

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(latitude, 'f', -1, 64),
			"lon":   strconv.FormatFloat(longitude, 'f', -1, 64),
			"appid": c.apiKey,
			"units": "metric",
			"cnt":   strconv.Itoa(days * 8), // 8 slots per day, every 3 hours
		}).
		SetResult(&payload).
		Get(c.baseURL + "/forecast")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode())
	}

	entries := make([]ForecastEntry, 0, len(payload.List))
	for _, item := range payload.List {
		entry := ForecastEntry{
			Date:          dateOf(item.DtTxt),
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Precipitation: item.Rain.ThreeHours,
		}
		if len(item.Weather) > 0 {
			entry.Condition = item.Weather[0].Description
		}
		entries = append(entries, entry)
	}

	return AggregateDaily(entries, days), nil
}

func dateOf(dtTxt string) string {
	if len(dtTxt) >= 10 {
		return dtTxt[:10]
	}
	return dtTxt
}
