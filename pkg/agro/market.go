package agro

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
)

func (a *Agro) recordPrice(input *models.MarketData) (*models.MarketData, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroMarket),
	)

	if strings.TrimSpace(input.CropName) == "" {
		return nil, common.ValidationError("crop name is required")
	}
	if strings.TrimSpace(input.MarketName) == "" {
		return nil, common.ValidationError("market name is required")
	}
	if input.CurrentPrice <= 0 {
		return nil, common.ValidationError("current price must be positive")
	}

	if input.PriceUnit == "" {
		input.PriceUnit = "quintal"
	}
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now().UTC()
	}
	if input.PreviousPrice > 0 {
		input.PriceChange = (input.CurrentPrice - input.PreviousPrice) / input.PreviousPrice * 100
	}

	if err := a.Db.Conn.Create(input).Error; err != nil {
		return nil, err
	}

	logger.Info("Market price recorded",
		zap.String("crop", input.CropName),
		zap.Float64("price", input.CurrentPrice))

	return input, nil
}

func (a *Agro) listPrices(cropName, state string, limit int) ([]models.MarketData, error) {
	if limit <= 0 {
		limit = 10
	}

	query := a.Db.Conn.Order("recorded_at desc").Limit(limit)
	if cropName != "" {
		query = query.Where("crop_name = ?", cropName)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var prices []models.MarketData
	err := query.Find(&prices).Error
	return prices, err
}

type IMarketImpl struct {
	agro *Agro
}

func (im *IMarketImpl) RecordPrice(input *models.MarketData) (*models.MarketData, error) {
	return im.agro.recordPrice(input)
}

func (im *IMarketImpl) ListPrices(cropName, state string, limit int) ([]models.MarketData, error) {
	return im.agro.listPrices(cropName, state, limit)
}

func (a *Agro) GetIMarket() IMarket {
	return &IMarketImpl{agro: a}
}
