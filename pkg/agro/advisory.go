package agro

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/advisory"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
)

func (a *Agro) weatherAdvisory(ctx context.Context, latitude, longitude float64, cropType string) (*AdvisoryResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroAdvisory),
	)

	snapshot, source, err := a.Weather.CurrentWeather(ctx, latitude, longitude, "")
	if err != nil {
		return nil, err
	}

	bundle := advisory.Generate(advisory.Observation{
		Temperature:   snapshot.Temperature,
		Humidity:      snapshot.Humidity,
		Precipitation: snapshot.Precipitation,
		Condition:     snapshot.Condition,
	}, cropType)

	logger.Info("Generated weather advisory",
		zap.Reflect("advisory", bundle),
		zap.String("crop_type", cropType))

	record := models.Advisory{
		Title:           bundle.Title,
		Content:         mustJSON(bundle),
		AdvisoryType:    models.AdvisoryTypeWeather,
		Priority:        models.Priority(bundle.Priority),
		Recommendations: mustJSON(bundle.Recommendations),
		Warnings:        mustJSON(bundle.Warnings),
		Opportunities:   mustJSON(bundle.Opportunities),
		WeatherData:     mustJSON(snapshot),
	}

	if err := a.Db.Conn.Create(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Advisory saved", zap.Uint("advisory_id", record.ID))

	return &AdvisoryResult{
		ID:       record.ID,
		Advisory: bundle,
		Weather:  snapshot,
		Source:   source,
		CropType: cropType,
	}, nil
}

func (a *Agro) userAdvisories(userID uint, limit int) ([]models.Advisory, error) {
	if limit <= 0 {
		limit = 10
	}

	var advisories []models.Advisory
	err := a.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&advisories).Error
	return advisories, err
}

func mustJSON(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(out)
}

type IAdvisoryImpl struct {
	agro *Agro
}

func (ia *IAdvisoryImpl) WeatherAdvisory(ctx context.Context, latitude, longitude float64, cropType string) (*AdvisoryResult, error) {
	return ia.agro.weatherAdvisory(ctx, latitude, longitude, cropType)
}

func (ia *IAdvisoryImpl) UserAdvisories(userID uint, limit int) ([]models.Advisory, error) {
	return ia.agro.userAdvisories(userID, limit)
}

func (a *Agro) GetIAdvisory() IAdvisory {
	return &IAdvisoryImpl{agro: a}
}
