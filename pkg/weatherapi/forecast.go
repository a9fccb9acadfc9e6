package weatherapi

import (
	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

// TemperatureRange is the min/max/avg of a day's 3-hourly readings.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// DailyForecast is one aggregated forecast day.
type DailyForecast struct {
	Date          string           `json:"date"`
	Temperature   TemperatureRange `json:"temperature"`
	Humidity      float64          `json:"humidity"`
	Precipitation float64          `json:"precipitation"`
	Condition     string           `json:"condition"`
}

// AggregateDaily folds 3-hourly entries into per-day summaries: temperature
// min/max/avg, average humidity, summed precipitation and the most frequent
// condition text. Output preserves first-seen date order, capped at days.
func AggregateDaily(entries []ForecastEntry, days int) []DailyForecast {
	buckets := map[string][]ForecastEntry{}
	order := []string{}

	for _, e := range entries {
		if _, seen := buckets[e.Date]; !seen {
			order = append(order, e.Date)
		}
		buckets[e.Date] = append(buckets[e.Date], e)
	}

	forecast := make([]DailyForecast, 0, len(order))
	for _, date := range order {
		day := buckets[date]
		n := float64(len(day))

		minTemp, maxTemp := day[0].Temperature, day[0].Temperature
		for _, e := range day {
			if e.Temperature < minTemp {
				minTemp = e.Temperature
			}
			if e.Temperature > maxTemp {
				maxTemp = e.Temperature
			}
		}

		tempSum := common.Reducer(day, func(acc float64, e ForecastEntry) float64 {
			return acc + e.Temperature
		}, 0.0)
		humiditySum := common.Reducer(day, func(acc float64, e ForecastEntry) float64 {
			return acc + e.Humidity
		}, 0.0)
		precipitationSum := common.Reducer(day, func(acc float64, e ForecastEntry) float64 {
			return acc + e.Precipitation
		}, 0.0)

		forecast = append(forecast, DailyForecast{
			Date: date,
			Temperature: TemperatureRange{
				Min: minTemp,
				Max: maxTemp,
				Avg: tempSum / n,
			},
			Humidity:      humiditySum / n,
			Precipitation: precipitationSum,
			Condition:     modalCondition(day),
		})
	}

	if len(forecast) > days {
		forecast = forecast[:days]
	}
	return forecast
}

func modalCondition(day []ForecastEntry) string {
	counts := map[string]int{}
	best := ""
	for _, e := range day {
		counts[e.Condition]++
		if best == "" || counts[e.Condition] > counts[best] {
			best = e.Condition
		}
	}
	return best
}
