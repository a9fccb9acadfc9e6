package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxUsers int = 1000
var httpHostPort string = "127.0.0.1:8000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	userIDs := make([]int, maxUsers)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			userIDs[i] = createUser()
			fmt.Printf("\rcreated user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(userIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func createUser() int {
	payload := map[string]any{
		"phone_number": "+" + uuid.NewString()[:12],
		"name":         "bench user",
		"latitude":     rndFloat64(8.0, 32.0, 4),
		"longitude":    rndFloat64(68.0, 92.0, 4),
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/users", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		User struct {
			ID int `json:"ID"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		panic(err)
	}
	return parsed.User.ID
}

func doAction(userID int) {
	actions := []func(){
		genWeatherAdvisoryAction(),
		genRecordPriceAction(),
		genUserAdvisoriesAction(userID),
	}
	actionNames := []string{
		"WeatherAdvisory",
		"RecordPrice",
		"UserAdvisories",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})

	for _, action := range actions {
		action()
	}
}

func genWeatherAdvisoryAction() func() {
	return func() {
		lat := rndFloat64(8.0, 32.0, 2)
		lon := rndFloat64(68.0, 92.0, 2)
		resp, err := http.Get(fmt.Sprintf("http://%s/api/weather/advisory?latitude=%v&longitude=%v&crop_type=rice", httpHostPort, lat, lon))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
	}
}

func genRecordPriceAction() func() {
	return func() {
		payload := map[string]any{
			"crop_name":     "onion",
			"market_name":   "bench market",
			"district":      "bench district",
			"state":         "bench state",
			"current_price": rndFloat64(500.0, 5000.0, 2),
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/market", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
	}
}

func genUserAdvisoriesAction(userID int) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/users/%v/advisories", httpHostPort, userID))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
	}
}
