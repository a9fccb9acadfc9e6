package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro/mocks"
	_ "github.com/ChandravardhanKothi/agro-advisory-service/pkg/testing"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/db"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/models"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/weatherapi"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

type stubProvider struct{}

func (stubProvider) Current(_ context.Context, latitude, longitude float64) (*weatherapi.Observation, error) {
	return &weatherapi.Observation{
		Latitude:    latitude,
		Longitude:   longitude,
		Temperature: 24,
		Humidity:    55,
		Condition:   "Clear",
	}, nil
}

func (stubProvider) Forecast(_ context.Context, _, _ float64, days int) ([]weatherapi.DailyForecast, error) {
	forecast := make([]weatherapi.DailyForecast, days)
	for i := range forecast {
		forecast[i] = weatherapi.DailyForecast{Date: fmt.Sprintf("2026-08-2%d", i+6)}
	}
	return forecast, nil
}

type stubTransport struct{}

func (stubTransport) SendText(_ context.Context, _, _ string) (*whatsapp.SendReceipt, error) {
	return &whatsapp.SendReceipt{SID: "SM" + uuid.NewString()[:8], Status: "queued"}, nil
}

func (stubTransport) SendMedia(_ context.Context, _, _ string) (*whatsapp.SendReceipt, error) {
	return &whatsapp.SendReceipt{SID: "MM" + uuid.NewString()[:8], Status: "queued"}, nil
}

func (stubTransport) Status(_ context.Context, sid string) (*whatsapp.MessageStatus, error) {
	return &whatsapp.MessageStatus{SID: sid, Status: "delivered"}, nil
}

type stubSpeech struct{}

func (stubSpeech) Synthesize(_ context.Context, _, _ string, userID uint) (string, error) {
	return fmt.Sprintf("uploads/voice/voice_%d.mp3", userID), nil
}

func setupTestServer(t *testing.T, limiter *agro.RateLimiterStore) *RestfulServer {
	agroObj := agro.Agro{
		Db:            *db.GetInstance(db.UseMemorySqliteDialector()),
		Provider:      stubProvider{},
		Detector:      classifier.NewDetector(classifier.NewStubRuntime(7), 0.5),
		Transport:     stubTransport{},
		Speech:        stubSpeech{},
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8000",
	}
	agroObj.WithServices(agro.ServiceOpts{
		Weather:   agroObj.GetIWeather(),
		Advisory:  agroObj.GetIAdvisory(),
		Detection: agroObj.GetIDetection(),
		Notify:    agroObj.GetINotify(),
		User:      agroObj.GetIUser(),
		Market:    agroObj.GetIMarket(),
	})

	rs := &RestfulServer{
		Server:           gin.Default(),
		Agro:             &agroObj,
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func postJSON(rs *RestfulServer, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, rs *RestfulServer, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func createTestUser(t *testing.T, rs *RestfulServer) *models.User {
	t.Helper()
	user, err := rs.Agro.User.CreateUser(&models.User{
		PhoneNumber: "+" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Name:        "Test Farmer",
	})
	require.NoError(t, err)
	return user
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBanner(t *testing.T) {
	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Agro Advisory Service", parsed["service"])
}

func TestCurrentWeather(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/weather/current?latitude=21.21&longitude=72.72")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "api", parsed["data_source"])

	weatherData := parsed["weather_data"].(map[string]any)
	assert.Equal(t, 24.0, weatherData["Temperature"])

	// second hit within the hour comes from the database
	w, parsed = getJSON(t, rs, "/api/weather/current?latitude=21.21&longitude=72.72")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "database", parsed["data_source"])
}

func TestCurrentWeather_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/api/weather/current?longitude=72.72", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestForecastWeather(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/weather/forecast?latitude=22.22&longitude=73.73&days=2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Len(t, parsed["forecast"], 2)
}

func TestWeatherAdvisory(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/weather/advisory?latitude=23.23&longitude=74.74")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "rice", parsed["crop_type"], "crop type defaults to rice")
	assert.NotZero(t, parsed["advisory_id"])

	adv := parsed["advisory"].(map[string]any)
	assert.Equal(t, "Weather Advisory for Rice", adv["title"])

	// 24C/55%/clear: optimal temp + clear sky, no warnings -> low priority
	assert.Equal(t, "low", adv["priority"])
}

func TestCreateAndGetUser(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	phone := "+" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	w := postJSON(rs, "/api/users", UserRequest{
		PhoneNumber: phone,
		Name:        "Sita",
		CropTypes:   []string{"rice", "wheat"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotZero(t, created.User.ID)
	assert.JSONEq(t, `["rice","wheat"]`, created.User.CropTypes)

	w2, parsed := getJSON(t, rs, fmt.Sprintf("/api/users/%d", created.User.ID))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, true, parsed["success"])
}

func TestCreateUser_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	// empty payload should be rejected
	w := postJSON(rs, "/api/users", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate phone number
	phone := "+" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	w = postJSON(rs, "/api/users", UserRequest{PhoneNumber: phone, Name: "First"})
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(rs, "/api/users", UserRequest{PhoneNumber: phone, Name: "Second"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/api/users/999999", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest("GET", "/api/users/not-a-number", nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func makeDetectRequest(t *testing.T, cropType string, userID string, imageBytes []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "leaf.png")
	require.NoError(t, err)
	_, err = part.Write(imageBytes)
	require.NoError(t, err)

	if cropType != "" {
		require.NoError(t, writer.WriteField("crop_type", cropType))
	}
	if userID != "" {
		require.NoError(t, writer.WriteField("user_id", userID))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/disease/detect", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func makeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{G: uint8((x + y) % 250), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectDisease(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)
	user := createTestUser(t, rs)

	req := makeDetectRequest(t, "tomato", fmt.Sprint(user.ID), makeTestPNG(t, 500, 500))
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, true, parsed["success"])
	assert.NotZero(t, parsed["image_id"])

	detection := parsed["detection"].(map[string]any)
	assert.Equal(t, "tomato", detection["crop_type"])
	assert.NotEmpty(t, detection["disease"])
	assert.NotEmpty(t, parsed["recommendations"])

	// the detection must be visible in history
	w2, history := getJSON(t, rs, fmt.Sprintf("/api/disease/history?user_id=%d", user.ID))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, float64(1), history["count"])
}

func TestDetectDisease_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	// no file at all
	req := httptest.NewRequest("POST", "/api/disease/detect", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// not an image
	req = makeDetectRequest(t, "rice", "", []byte("definitely not a png"))
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// too small
	req = makeDetectRequest(t, "rice", "", makeTestPNG(t, 50, 50))
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupportedCrops(t *testing.T) {
	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/disease/supported-crops")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Len(t, parsed["supported_crops"], 5)

	classes := parsed["disease_classes"].(map[string]any)
	riceClasses := classes["rice"].([]any)
	assert.Equal(t, "Healthy", riceClasses[0])
}

func TestDiseaseInfo(t *testing.T) {
	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/disease/disease-info/rice/Brown%20Spot")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])

	info := parsed["disease_info"].(map[string]any)
	assert.NotEmpty(t, info["symptoms"])
	assert.NotEmpty(t, info["treatment"])
}

func TestSendMessage(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)
	user := createTestUser(t, rs)

	w := postJSON(rs, "/api/whatsapp/send", SendRequest{
		UserID:  int(user.ID),
		Message: "Irrigate tonight",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, true, parsed["success"])
	assert.NotEmpty(t, parsed["message_sid"])
	assert.Equal(t, true, parsed["delivered"])
}

func TestSendMessage_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	// empty payload should be rejected
	w := postJSON(rs, "/api/whatsapp/send", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown user
	w = postJSON(rs, "/api/whatsapp/send", SendRequest{UserID: 999999, Message: "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendVoice(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)
	user := createTestUser(t, rs)

	w := postJSON(rs, "/api/whatsapp/voice", VoiceRequest{
		UserID:   int(user.ID),
		Text:     "Spray after sunset",
		Language: "hi",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Contains(t, parsed["voice_url"], "/uploads/voice/")
}

func TestBroadcast(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	var ids []int
	for i := 0; i < 2; i++ {
		ids = append(ids, int(createTestUser(t, rs).ID))
	}

	w := postJSON(rs, "/api/whatsapp/broadcast", BroadcastRequest{
		Message: "Rain expected tomorrow",
		UserIDs: ids,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, float64(2), parsed["total_users"])
	assert.Equal(t, float64(2), parsed["successful"])
	assert.Equal(t, float64(0), parsed["failed"])
}

func TestWebhook(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	form := url.Values{}
	form.Set("Body", "help")
	form.Set("From", "whatsapp:+911234567890")

	req := httptest.NewRequest("POST", "/api/whatsapp/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "Available commands")
}

func TestWebhookMalformedForm(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	// %zz is not valid percent-encoding, so form parsing fails
	req := httptest.NewRequest("POST", "/api/whatsapp/webhook", strings.NewReader("Body=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "error processing your message")
}

func TestMessageStatus(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	w, parsed := getJSON(t, rs, "/api/whatsapp/status/SM1234")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])

	status := parsed["message_status"].(map[string]any)
	assert.Equal(t, "SM1234", status["sid"])
	assert.Equal(t, "delivered", status["status"])
}

func TestMarketRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	crop := "crop-" + uuid.NewString()
	w := postJSON(rs, "/api/market", MarketRequest{
		CropName:      crop,
		MarketName:    "Lasalgaon",
		District:      "Nashik",
		State:         "Maharashtra",
		CurrentPrice:  2400,
		PreviousPrice: 2000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w2, parsed := getJSON(t, rs, "/api/market/prices?crop="+crop)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, float64(1), parsed["count"])

	prices := parsed["prices"].([]any)
	first := prices[0].(map[string]any)
	assert.InDelta(t, 20.0, first["PriceChange"], 1e-9)
}

func TestMarket_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	// empty payload should be rejected
	w := postJSON(rs, "/api/market", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, agro.NewRateLimiterStore(2, 2))
	user := createTestUser(t, rs)

	payload := SendRequest{UserID: int(user.ID), Message: "ping"}

	// burst of 2, third request in quick succession must be limited
	for i := 0; i < 3; i++ {
		w := postJSON(rs, "/api/whatsapp/send", payload)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// raising the per-recipient limit unblocks the recipient
	w := postJSON(rs, fmt.Sprintf("/api/whatsapp/limiter/%d", user.ID), LimiterRequest{Rate: 10, Burst: 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(rs, "/api/whatsapp/send", payload)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, agro.NewRateLimiterStore(2, 2))

	// empty payload should be rejected
	w := postJSON(rs, "/api/whatsapp/limiter/1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeatherAdvisoryServiceError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAdvisory := mocks.NewMockIAdvisory(ctrl)
	rs.Agro.Advisory = mockIAdvisory
	mockIAdvisory.EXPECT().
		WeatherAdvisory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	req := httptest.NewRequest("GET", "/api/weather/advisory?latitude=1&longitude=2", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
