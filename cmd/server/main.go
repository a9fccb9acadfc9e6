package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/db"
	agroHttp "github.com/ChandravardhanKothi/agro-advisory-service/pkg/http"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/tts"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/weatherapi"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	agroDbType := os.Getenv(common.EnvKeyAgroDBType)
	switch agroDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown AGRO_DB_TYPE: " + agroDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAgroHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAgroDefaultRate), 64); err != nil {
		log.Fatal("Invalid AGRO_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAgroDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid AGRO_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	uploadDir := strings.TrimSpace(os.Getenv(common.EnvKeyAgroUploadDir))
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err = os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir %s: %v", uploadDir, err)
	}

	publicBaseURL := strings.TrimSpace(os.Getenv(common.EnvKeyAgroPublicBaseURL))
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8000"
	}

	logger := common.GetLogger()

	provider := weatherapi.NewClient(
		os.Getenv(common.EnvKeyOpenWeatherAPIKey),
		os.Getenv(common.EnvKeyOpenWeatherBaseURL),
	)

	confidenceThreshold := 0.5
	if raw := os.Getenv(common.EnvKeyConfidenceThreshold); raw != "" {
		if confidenceThreshold, err = strconv.ParseFloat(raw, 64); err != nil {
			log.Fatal("Invalid CONFIDENCE_THRESHOLD, should be a float64 value")
		}
	}

	var runtime classifier.Runtime
	if modelURL := strings.TrimSpace(os.Getenv(common.EnvKeyCropModelURL)); modelURL != "" {
		logger.Info("Using remote classification runtime", zap.String("url", modelURL))
		runtime = classifier.NewRemoteRuntime(modelURL)
	} else {
		logger.Info("No CROP_MODEL_URL configured, using stub classification runtime")
		runtime = classifier.NewStubRuntime(time.Now().UnixNano())
	}

	transport := whatsapp.NewTwilioTransport(
		os.Getenv(common.EnvKeyTwilioAccountSID),
		os.Getenv(common.EnvKeyTwilioAuthToken),
		os.Getenv(common.EnvKeyTwilioWhatsAppNumber),
		os.Getenv(common.EnvKeyTwilioBaseURL),
	)

	var primaryEngine tts.Engine
	switch os.Getenv(common.EnvKeyTTSEngine) {
	case "command":
		primaryEngine = tts.NewCommandEngine(os.Getenv(common.EnvKeyTTSCommand))
	default:
		primaryEngine = tts.NewCloudEngine(os.Getenv(common.EnvKeyTTSCloudBaseURL))
	}
	speech, err := tts.NewService(
		filepath.Join(uploadDir, "voice"),
		primaryEngine,
		tts.NewCommandEngine(os.Getenv(common.EnvKeyTTSCommand)),
	)
	if err != nil {
		log.Fatalf("failed to set up tts service: %v", err)
	}

	agroCore := agro.Agro{
		Db:            *dbInstance,
		Provider:      provider,
		Detector:      classifier.NewDetector(runtime, confidenceThreshold),
		Transport:     transport,
		Speech:        speech,
		UploadDir:     uploadDir,
		PublicBaseURL: publicBaseURL,
	}
	agroCore.WithServices(agro.ServiceOpts{
		Weather:   agroCore.GetIWeather(),
		Advisory:  agroCore.GetIAdvisory(),
		Detection: agroCore.GetIDetection(),
		Notify:    agroCore.GetINotify(),
		User:      agroCore.GetIUser(),
		Market:    agroCore.GetIMarket(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":8000"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &agroHttp.RestfulServer{
		Server:           gin.Default(),
		Agro:             &agroCore,
		RateLimiterStore: agro.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
