package agro

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/weatherapi"
)

// freshnessWindow is how long a stored snapshot may serve requests instead
// of a provider call.
const freshnessWindow = time.Hour

const (
	SourceDatabase = "database"
	SourceAPI      = "api"
)

func (a *Agro) currentWeather(ctx context.Context, latitude, longitude float64, location string) (*models.WeatherSnapshot, string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroWeather),
	)

	var cached models.WeatherSnapshot
	err := a.Db.Conn.
		Where("latitude = ? AND longitude = ? AND recorded_at >= ?",
			latitude, longitude, time.Now().UTC().Add(-freshnessWindow)).
		Order("recorded_at desc").
		First(&cached).Error
	if err == nil {
		logger.Info("Serving cached weather snapshot", zap.Reflect("snapshot", cached))
		return &cached, SourceDatabase, nil
	}

	obs, err := a.Provider.Current(ctx, latitude, longitude)
	if err != nil {
		return nil, "", common.UnavailableError("failed to fetch weather data", err)
	}

	if location == "" {
		location = obs.Location
	}
	if location == "" {
		location = fmt.Sprintf("%v,%v", latitude, longitude)
	}

	snapshot := models.WeatherSnapshot{
		Location:      location,
		Latitude:      latitude,
		Longitude:     longitude,
		Temperature:   obs.Temperature,
		Humidity:      clamp(obs.Humidity, 0, 100),
		Pressure:      obs.Pressure,
		WindSpeed:     obs.WindSpeed,
		WindDirection: obs.WindDirection,
		Precipitation: max(obs.Precipitation, 0),
		CloudCover:    clamp(obs.CloudCover, 0, 100),
		Condition:     obs.Condition,
		Description:   obs.Description,
		DataSource:    "openweather",
		RecordedAt:    time.Now().UTC(),
	}

	if err := a.Db.Conn.Create(&snapshot).Error; err != nil {
		return nil, "", err
	}

	logger.Info("Stored fresh weather snapshot", zap.Reflect("snapshot", snapshot))

	return &snapshot, SourceAPI, nil
}

func (a *Agro) forecastWeather(ctx context.Context, latitude, longitude float64, days int) ([]weatherapi.DailyForecast, error) {
	if days < 1 {
		days = 1
	}
	if days > 5 {
		days = 5
	}

	forecast, err := a.Provider.Forecast(ctx, latitude, longitude, days)
	if err != nil {
		return nil, common.UnavailableError("failed to fetch forecast", err)
	}
	return forecast, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type IWeatherImpl struct {
	agro *Agro
}

func (iw *IWeatherImpl) CurrentWeather(ctx context.Context, latitude, longitude float64, location string) (*models.WeatherSnapshot, string, error) {
	return iw.agro.currentWeather(ctx, latitude, longitude, location)
}

func (iw *IWeatherImpl) ForecastWeather(ctx context.Context, latitude, longitude float64, days int) ([]weatherapi.DailyForecast, error) {
	return iw.agro.forecastWeather(ctx, latitude, longitude, days)
}

func (a *Agro) GetIWeather() IWeather {
	return &IWeatherImpl{agro: a}
}
