package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

type RestfulServer struct {
	Server           *gin.Engine
	Agro             *agro.Agro
	RateLimiterStore *agro.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(recipient string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(recipient)
	}
}

func (rs *RestfulServer) CheckRecipientLimiter(recipient string) bool {
	limiter := rs.GetLimiter(recipient)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(recipient string, recipientRate float64, recipientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(recipient, rate.Limit(recipientRate), recipientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/", rs.Banner)
	rs.Server.Static("/uploads", rs.Agro.UploadDir)

	disease := rs.Server.Group("/api/disease")
	{
		disease.POST("/detect", rs.DetectDisease)
		disease.GET("/history", rs.DetectionHistory)
		disease.GET("/supported-crops", rs.SupportedCrops)
		disease.GET("/disease-info/:crop_type/:disease_name", rs.DiseaseInfo)
	}

	weather := rs.Server.Group("/api/weather")
	{
		weather.GET("/current", rs.CurrentWeather)
		weather.GET("/forecast", rs.ForecastWeather)
		weather.GET("/advisory", rs.WeatherAdvisory)
	}

	whatsApp := rs.Server.Group("/api/whatsapp")
	{
		whatsApp.POST("/send", rs.SendMessage)
		whatsApp.POST("/voice", rs.SendVoice)
		whatsApp.POST("/broadcast", rs.Broadcast)
		whatsApp.POST("/webhook", rs.Webhook)
		whatsApp.GET("/status/:message_sid", rs.MessageStatus)
		whatsApp.POST("/limiter/:user_id", rs.PostLimiter)
	}

	users := rs.Server.Group("/api/users")
	{
		users.POST("", rs.CreateUser)
		users.GET("/:user_id", rs.GetUser)
		users.GET("/:user_id/advisories", rs.UserAdvisories)
	}

	market := rs.Server.Group("/api/market")
	{
		market.POST("", rs.RecordPrice)
		market.GET("/prices", rs.ListPrices)
	}
}

// respondError maps service error kinds onto HTTP statuses. Anything
// without a kind is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch common.KindOf(err) {
	case common.ErrKindValidation:
		status = http.StatusBadRequest
	case common.ErrKindNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func respondRateLimited(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "rate limit exceeded"})
}
