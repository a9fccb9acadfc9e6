package agro_test

import (
	. "github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/agro/mocks"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/classifier"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/db"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/weatherapi"
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/whatsapp"
)

// UseMocks selects which services get replaced with gomock instances; the
// rest run as real implementations against the shared in-memory database.
type UseMocks struct {
	Weather   bool
	Advisory  bool
	Detection bool
	Notify    bool
	User      bool
	Market    bool
}

type Mocks struct {
	Weather   *mocks.MockIWeather
	Advisory  *mocks.MockIAdvisory
	Detection *mocks.MockIDetection
	Notify    *mocks.MockINotify
	User      *mocks.MockIUser
	Market    *mocks.MockIMarket
}

func GetMockAgroWithMemorySqliteDialector(t *testing.T, use UseMocks) (*gomock.Controller, *Agro, *Mocks) {
	ctrl := gomock.NewController(t)

	m := &Mocks{
		Weather:   mocks.NewMockIWeather(ctrl),
		Advisory:  mocks.NewMockIAdvisory(ctrl),
		Detection: mocks.NewMockIDetection(ctrl),
		Notify:    mocks.NewMockINotify(ctrl),
		User:      mocks.NewMockIUser(ctrl),
		Market:    mocks.NewMockIMarket(ctrl),
	}

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	agroInstance := &Agro{
		Db:            *dbInstance,
		Provider:      &fakeProvider{},
		Detector:      classifier.NewDetector(classifier.NewStubRuntime(1), 0.5),
		Transport:     newFakeTransport(),
		Speech:        &fakeSpeech{},
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8000",
	}

	weatherService := agroInstance.GetIWeather()
	if use.Weather {
		weatherService = m.Weather
	}
	advisoryService := agroInstance.GetIAdvisory()
	if use.Advisory {
		advisoryService = m.Advisory
	}
	detectionService := agroInstance.GetIDetection()
	if use.Detection {
		detectionService = m.Detection
	}
	notifyService := agroInstance.GetINotify()
	if use.Notify {
		notifyService = m.Notify
	}
	userService := agroInstance.GetIUser()
	if use.User {
		userService = m.User
	}
	marketService := agroInstance.GetIMarket()
	if use.Market {
		marketService = m.Market
	}

	agroInstance.WithServices(ServiceOpts{
		Weather:   weatherService,
		Advisory:  advisoryService,
		Detection: detectionService,
		Notify:    notifyService,
		User:      userService,
		Market:    marketService,
	})

	return ctrl, agroInstance, m
}

// uniquePhone returns a fresh recipient per test; the in-memory database is
// shared across the package run, so fixed numbers would collide.
func uniquePhone() string {
	return "+" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

// fakeProvider is a canned weatherapi.Provider with a call counter, so tests
// can assert the cache short-circuited the upstream call.
type fakeProvider struct {
	current       *weatherapi.Observation
	forecast      []weatherapi.DailyForecast
	err           error
	currentCalls  int
	forecastCalls int
	lastDays      int
}

func (f *fakeProvider) Current(_ context.Context, latitude, longitude float64) (*weatherapi.Observation, error) {
	f.currentCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.current == nil {
		return &weatherapi.Observation{
			Latitude:    latitude,
			Longitude:   longitude,
			Temperature: 25,
			Humidity:    50,
			Condition:   "Clear",
		}, nil
	}
	return f.current, nil
}

func (f *fakeProvider) Forecast(_ context.Context, _, _ float64, days int) ([]weatherapi.DailyForecast, error) {
	f.forecastCalls++
	f.lastDays = days
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

// fakeTransport records outbound sends and can be told to fail for specific
// recipients.
type fakeTransport struct {
	mu      sync.Mutex
	texts   []string // recipients, in send order
	media   []string // media URLs, in send order
	failFor map[string]error
	status  *whatsapp.MessageStatus
	seq     int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{failFor: make(map[string]error)}
}

func (f *fakeTransport) SendText(_ context.Context, to, _ string) (*whatsapp.SendReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return nil, err
	}
	f.seq++
	f.texts = append(f.texts, to)
	return &whatsapp.SendReceipt{SID: fmt.Sprintf("SM%04d", f.seq), Status: "queued"}, nil
}

func (f *fakeTransport) SendMedia(_ context.Context, to, mediaURL string) (*whatsapp.SendReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return nil, err
	}
	f.seq++
	f.media = append(f.media, mediaURL)
	return &whatsapp.SendReceipt{SID: fmt.Sprintf("MM%04d", f.seq), Status: "queued"}, nil
}

func (f *fakeTransport) Status(_ context.Context, sid string) (*whatsapp.MessageStatus, error) {
	if f.status != nil {
		return f.status, nil
	}
	return &whatsapp.MessageStatus{SID: sid, Status: "delivered"}, nil
}

// fakeSpeech returns a deterministic path without touching the filesystem.
type fakeSpeech struct {
	err   error
	calls int
}

func (f *fakeSpeech) Synthesize(_ context.Context, _, _ string, userID uint) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("uploads/voice/voice_%d_test.mp3", userID), nil
}
