package agro_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	_ "github.com/ChandravardhanKothi/agro-advisory-service/pkg/testing"
)

func TestRecordPrice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	record, err := agroObj.Market.RecordPrice(&models.MarketData{
		CropName:      "onion",
		MarketName:    "Lasalgaon",
		District:      "Nashik",
		State:         "Maharashtra",
		CurrentPrice:  2400,
		PreviousPrice: 2000,
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "quintal", record.PriceUnit, "unit defaults to quintal")
	assert.InDelta(t, 20.0, record.PriceChange, 1e-9)
	assert.False(t, record.RecordedAt.IsZero())
}

func TestRecordPrice_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	for _, input := range []*models.MarketData{
		{MarketName: "Azadpur", CurrentPrice: 100},          // no crop
		{CropName: "tomato", CurrentPrice: 100},             // no market
		{CropName: "tomato", MarketName: "Azadpur"},         // no price
		{CropName: "tomato", MarketName: "A", CurrentPrice: -5},
	} {
		_, err := agroObj.Market.RecordPrice(input)
		require.Error(t, err)
		assert.Equal(t, common.ErrKindValidation, common.KindOf(err))
	}
}

func TestListPrices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _ := GetMockAgroWithMemorySqliteDialector(t, UseMocks{})
	defer ctrl.Finish()

	// unique crop name per run; the in-memory db is shared
	crop := "crop-" + uuid.NewString()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := agroObj.Market.RecordPrice(&models.MarketData{
			CropName:     crop,
			MarketName:   "Mandi",
			District:     "D",
			State:        "Punjab",
			CurrentPrice: float64(1000 + i*100),
			RecordedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := agroObj.Market.RecordPrice(&models.MarketData{
		CropName:     crop,
		MarketName:   "Mandi",
		District:     "D",
		State:        "Haryana",
		CurrentPrice: 900,
		RecordedAt:   base.Add(10 * time.Minute),
	})
	require.NoError(t, err)

	prices, err := agroObj.Market.ListPrices(crop, "", 0)
	require.NoError(t, err)
	require.Len(t, prices, 4)
	assert.Equal(t, float64(900), prices[0].CurrentPrice, "most recent first")

	prices, err = agroObj.Market.ListPrices(crop, "Punjab", 2)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	for _, p := range prices {
		assert.Equal(t, "Punjab", p.State)
	}
}
