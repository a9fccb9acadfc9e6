// Package advisory turns one weather observation into a recommendation
// bundle for a crop. Generate is pure: rules accumulate independently and
// priority is assigned last from the warning count alone.
package advisory

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Observation is the slice of a weather snapshot the rules look at.
type Observation struct {
	Temperature   float64 // Celsius
	Humidity      float64 // percent
	Precipitation float64 // mm
	Condition     string  // short condition text, e.g. "Clear", "Rain"
}

type Advisory struct {
	Title           string   `json:"title"`
	Priority        Priority `json:"priority"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
	Opportunities   []string `json:"opportunities"`
}

// WarningCount reports how many warnings the bundle carries.
func (a Advisory) WarningCount() int {
	return len(a.Warnings)
}

// Generate evaluates the threshold rules against obs and returns the
// accumulated bundle. The "optimal temperature" opportunity only fires when
// neither temperature extreme did, and each elif-style group below keeps
// that same first-match-wins shape within the group.
func Generate(obs Observation, cropType string) Advisory {
	adv := Advisory{
		Title:           fmt.Sprintf("Weather Advisory for %s", titleCase(cropType)),
		Priority:        PriorityNormal,
		Recommendations: []string{},
		Warnings:        []string{},
		Opportunities:   []string{},
	}

	condition := strings.ToLower(obs.Condition)

	if obs.Temperature < 10 {
		adv.Recommendations = append(adv.Recommendations, "Cold weather detected. Consider covering young plants.")
		adv.Warnings = append(adv.Warnings, "Risk of frost damage to tender crops.")
	} else if obs.Temperature > 35 {
		adv.Recommendations = append(adv.Recommendations, "Hot weather detected. Increase irrigation frequency.")
		adv.Warnings = append(adv.Warnings, "High temperature stress on crops.")
	} else if obs.Temperature >= 20 && obs.Temperature <= 30 {
		adv.Opportunities = append(adv.Opportunities, "Optimal temperature range for most crops.")
	}

	if obs.Humidity > 80 {
		adv.Recommendations = append(adv.Recommendations, "High humidity detected. Monitor for fungal diseases.")
		adv.Warnings = append(adv.Warnings, "Increased risk of fungal infections.")
	} else if obs.Humidity < 40 {
		adv.Recommendations = append(adv.Recommendations, "Low humidity detected. Ensure adequate irrigation.")
	}

	if obs.Precipitation > 10 {
		adv.Recommendations = append(adv.Recommendations, "Heavy rainfall detected. Check drainage systems.")
		adv.Warnings = append(adv.Warnings, "Risk of waterlogging and root diseases.")
	} else if obs.Precipitation == 0 && obs.Humidity < 50 {
		adv.Recommendations = append(adv.Recommendations, "Dry conditions detected. Increase irrigation.")
	}

	if strings.Contains(condition, "rain") {
		adv.Recommendations = append(adv.Recommendations, "Rainfall expected. Postpone fertilizer application.")
	} else if strings.Contains(condition, "clear") {
		adv.Opportunities = append(adv.Opportunities, "Clear weather ideal for field operations.")
	} else if strings.Contains(condition, "storm") || strings.Contains(condition, "thunder") {
		adv.Warnings = append(adv.Warnings, "Storm conditions expected. Secure equipment and structures.")
	}

	switch strings.ToLower(cropType) {
	case "rice":
		if obs.Humidity > 70 && obs.Temperature > 25 {
			adv.Warnings = append(adv.Warnings, "Conditions favorable for rice blast disease.")
			adv.Recommendations = append(adv.Recommendations, "Apply preventive fungicide for rice blast.")
		}
	case "wheat":
		if obs.Temperature > 30 && obs.Humidity < 50 {
			adv.Warnings = append(adv.Warnings, "Hot and dry conditions may cause wheat stress.")
			adv.Recommendations = append(adv.Recommendations, "Ensure adequate soil moisture for wheat.")
		}
	}

	// priority is an assignment, not an escalation of the default
	if len(adv.Warnings) > 2 {
		adv.Priority = PriorityHigh
	} else if len(adv.Warnings) > 0 {
		adv.Priority = PriorityNormal
	} else {
		adv.Priority = PriorityLow
	}

	return adv
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
