package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type AdvisoryType string

const (
	AdvisoryTypeWeather   AdvisoryType = "weather"
	AdvisoryTypeDisease   AdvisoryType = "disease"
	AdvisoryTypeMarket    AdvisoryType = "market"
	AdvisoryTypeGeneral   AdvisoryType = "general"
	AdvisoryTypeWhatsApp  AdvisoryType = "whatsapp"
	AdvisoryTypeBroadcast AdvisoryType = "broadcast"
)

// User is a farmer profile keyed by phone number.
type User struct {
	ID              uint   `gorm:"primaryKey"`
	PhoneNumber     string `gorm:"type:varchar(15);uniqueIndex;not null"`
	Name            string `gorm:"type:varchar(100);not null"`
	Language        string `gorm:"type:varchar(10);default:en"`
	Location        string `gorm:"type:varchar(100)"`
	Latitude        float64
	Longitude       float64
	CropTypes       string `gorm:"type:text"` // JSON array of preferred crops
	WhatsAppEnabled bool   `gorm:"default:true"`
	IsActive        bool   `gorm:"default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	CropImages []CropImage `gorm:"foreignKey:UserID"`
	Advisories []Advisory  `gorm:"foreignKey:UserID"`
}

// CropImage stores one uploaded image together with its detection result.
type CropImage struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"index;not null"`
	Filename string `gorm:"type:varchar(255);not null"`
	FilePath string `gorm:"type:varchar(500);not null"`
	FileSize int

	PredictedDisease string `gorm:"type:varchar(100)"`
	ConfidenceScore  float64
	IsDiseased       bool `gorm:"default:false"`

	CropType     string `gorm:"type:varchar(50)"`
	ImageQuality string `gorm:"type:varchar(20);check:image_quality IN ('excellent','good','poor')"`

	Processed       bool   `gorm:"default:false"`
	ProcessingError string `gorm:"type:text"`

	CreatedAt time.Time
}

// WeatherSnapshot is one observation fetched from the weather provider.
// Humidity and cloud cover are clamped to [0,100] and precipitation to >= 0
// at ingestion time.
type WeatherSnapshot struct {
	ID        uint   `gorm:"primaryKey"`
	Location  string `gorm:"type:varchar(100);not null"`
	Latitude  float64
	Longitude float64

	Temperature   float64 // Celsius
	Humidity      float64 // percent
	Pressure      float64 // hPa
	WindSpeed     float64 // m/s
	WindDirection float64 // degrees
	Precipitation float64 // mm
	CloudCover    float64 // percent

	Condition   string `gorm:"type:varchar(50)"`
	Description string `gorm:"type:varchar(100)"`

	ForecastData string `gorm:"type:text"` // JSON

	DataSource string    `gorm:"type:varchar(50);default:openweather"`
	RecordedAt time.Time `gorm:"index"`
}

// Advisory is created once per advisory request and never updated.
type Advisory struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index"` // zero for location-only advisories

	Title        string       `gorm:"type:varchar(200);not null"`
	Content      string       `gorm:"type:text;not null"`
	AdvisoryType AdvisoryType `gorm:"type:varchar(50)"`

	Language      string `gorm:"type:varchar(10);default:en"`
	VoiceFilePath string `gorm:"type:varchar(500)"`

	Priority        Priority `gorm:"type:varchar(20);default:normal;check:priority IN ('low','normal','high')"`
	Recommendations string   `gorm:"type:text"` // JSON array
	Warnings        string   `gorm:"type:text"` // JSON array
	Opportunities   string   `gorm:"type:text"` // JSON array
	WeatherData     string   `gorm:"type:text"` // JSON

	WhatsAppSent   bool `gorm:"default:false"`
	WhatsAppSentAt *time.Time

	CreatedAt time.Time
}

// MarketData is one crop price observation for a market.
type MarketData struct {
	ID uint `gorm:"primaryKey"`

	CropName    string `gorm:"type:varchar(100);not null;index"`
	CropVariety string `gorm:"type:varchar(100)"`

	MarketName string `gorm:"type:varchar(100);not null"`
	District   string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(100);not null;index"`

	CurrentPrice  float64 `gorm:"not null"`
	PriceUnit     string  `gorm:"type:varchar(20);default:quintal"`
	PreviousPrice float64
	PriceChange   float64 // percent

	Demand      string `gorm:"type:varchar(20)"`
	Supply      string `gorm:"type:varchar(20)"`
	MarketTrend string `gorm:"type:varchar(20)"`

	DataSource string    `gorm:"type:varchar(50);default:market_api"`
	RecordedAt time.Time `gorm:"index"`
}
