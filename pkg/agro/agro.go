package agro

import (
	"context"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/advisory"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/db"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/tts"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/weatherapi"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

type IWeather interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64, location string) (*models.WeatherSnapshot, string, error)
	ForecastWeather(ctx context.Context, latitude, longitude float64, days int) ([]weatherapi.DailyForecast, error)
}

type IAdvisory interface {
	WeatherAdvisory(ctx context.Context, latitude, longitude float64, cropType string) (*AdvisoryResult, error)
	UserAdvisories(userID uint, limit int) ([]models.Advisory, error)
}

type IDetection interface {
	DetectDisease(ctx context.Context, userID uint, filename string, image []byte, cropType string) (*DetectionRecord, error)
	DetectionHistory(userID uint, limit int) ([]models.CropImage, error)
}

type INotify interface {
	SendMessage(ctx context.Context, userID uint, message, language string, includeVoice bool) (*SendResult, error)
	SendVoice(ctx context.Context, userID uint, text, language string) (*SendResult, error)
	Broadcast(ctx context.Context, message, language string, userIDs []uint) (*BroadcastResult, error)
	MessageStatus(ctx context.Context, sid string) (*whatsapp.MessageStatus, error)
}

type IUser interface {
	CreateUser(input *models.User) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
}

type IMarket interface {
	RecordPrice(input *models.MarketData) (*models.MarketData, error)
	ListPrices(cropName, state string, limit int) ([]models.MarketData, error)
}

// Agro is the service core: one DB handle, the external collaborators and
// the per-concern service interfaces. Collaborators are injected once at
// process start; no package-level singletons.
type Agro struct {
	Db db.DB

	Provider  weatherapi.Provider
	Detector  *classifier.Detector
	Transport whatsapp.Transport
	Speech    tts.Synthesizer

	UploadDir     string
	PublicBaseURL string

	Weather   IWeather
	Advisory  IAdvisory
	Detection IDetection
	Notify    INotify
	User      IUser
	Market    IMarket
}

type ServiceOpts struct {
	Weather   IWeather
	Advisory  IAdvisory
	Detection IDetection
	Notify    INotify
	User      IUser
	Market    IMarket
}

func (a *Agro) WithServices(opts ServiceOpts) *Agro {
	if opts.Weather != nil {
		a.Weather = opts.Weather
	}
	if opts.Advisory != nil {
		a.Advisory = opts.Advisory
	}
	if opts.Detection != nil {
		a.Detection = opts.Detection
	}
	if opts.Notify != nil {
		a.Notify = opts.Notify
	}
	if opts.User != nil {
		a.User = opts.User
	}
	if opts.Market != nil {
		a.Market = opts.Market
	}
	return a
}

// AdvisoryResult is an advisory bundle together with the weather it was
// derived from.
type AdvisoryResult struct {
	ID       uint                    `json:"id"`
	Advisory advisory.Advisory       `json:"advisory"`
	Weather  *models.WeatherSnapshot `json:"weather_data"`
	Source   string                  `json:"data_source"`
	CropType string                  `json:"crop_type"`
}

// DetectionRecord is a stored detection plus the derived guidance.
type DetectionRecord struct {
	ImageID         uint                   `json:"image_id"`
	Result          *classifier.Result     `json:"result"`
	DiseaseInfo     classifier.DiseaseInfo `json:"disease_info"`
	Recommendations []string               `json:"recommendations"`
}

// SendResult is the outcome of one outbound message.
type SendResult struct {
	MessageSID string `json:"message_sid"`
	VoiceURL   string `json:"voice_url,omitempty"`
	Delivered  bool   `json:"delivered"`
}

// RecipientResult is one entry of a broadcast outcome.
type RecipientResult struct {
	UserID     uint   `json:"user_id"`
	Phone      string `json:"phone"`
	Status     string `json:"status"` // sent | failed
	MessageSID string `json:"message_sid,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BroadcastResult aggregates per-recipient outcomes; one failure never
// aborts the batch.
type BroadcastResult struct {
	TotalUsers int               `json:"total_users"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []RecipientResult `json:"results"`
}
