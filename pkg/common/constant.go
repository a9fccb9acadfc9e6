package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAgroDBType string = "AGRO_DB_TYPE"
	EnvKeyAgroDbPath string = "AGRO_DB_PATH"

	EnvKeyAgroHttpHostPort  string = "AGRO_HTTP_HOST_PORT"
	EnvKeyAgroPublicBaseURL string = "AGRO_PUBLIC_BASE_URL"
	EnvKeyAgroUploadDir     string = "AGRO_UPLOAD_DIR"

	EnvKeyAgroDefaultRate  string = "AGRO_DEFAULT_RATE"
	EnvKeyAgroDefaultBurst string = "AGRO_DEFAULT_BURST"

	EnvKeyOpenWeatherAPIKey  string = "OPENWEATHER_API_KEY"
	EnvKeyOpenWeatherBaseURL string = "OPENWEATHER_BASE_URL"

	EnvKeyTwilioAccountSID     string = "TWILIO_ACCOUNT_SID"
	EnvKeyTwilioAuthToken      string = "TWILIO_AUTH_TOKEN"
	EnvKeyTwilioWhatsAppNumber string = "TWILIO_WHATSAPP_NUMBER"
	EnvKeyTwilioBaseURL        string = "TWILIO_BASE_URL"

	EnvKeyCropModelURL        string = "CROP_MODEL_URL"
	EnvKeyConfidenceThreshold string = "CONFIDENCE_THRESHOLD"

	EnvKeyTTSEngine       string = "TTS_ENGINE"
	EnvKeyTTSCloudBaseURL string = "TTS_CLOUD_BASE_URL"
	EnvKeyTTSCommand      string = "TTS_COMMAND"

	LoggerNameAgroCore         string = "agro_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerFieldAgroCategory    string = "category"
	LoggerCategoryAgroWeather  string = "weather"
	LoggerCategoryAgroAdvisory string = "advisory"
	LoggerCategoryAgroDisease  string = "disease"
	LoggerCategoryAgroNotify   string = "notify"
	LoggerCategoryAgroUser     string = "user"
	LoggerCategoryAgroMarket   string = "market"
)
