package classifier

import (
	"fmt"
	"strings"
)

type DiseaseInfo struct {
	Symptoms   []string `json:"symptoms"`
	Causes     string   `json:"causes"`
	Treatment  string   `json:"treatment"`
	Prevention string   `json:"prevention"`
}

var diseaseKnowledge = map[CropType]map[string]DiseaseInfo{
	CropRice: {
		"Brown Spot": {
			Symptoms:   []string{"Brown spots on leaves", "Yellowing of leaves", "Reduced yield"},
			Causes:     "Fungal infection",
			Treatment:  "Apply fungicides, improve drainage",
			Prevention: "Use resistant varieties, proper spacing",
		},
		"Bacterial Leaf Blight": {
			Symptoms:   []string{"Water-soaked lesions", "Yellow streaks", "Leaf wilting"},
			Causes:     "Bacterial infection",
			Treatment:  "Copper-based fungicides",
			Prevention: "Clean seeds, avoid overhead irrigation",
		},
	},
	CropWheat: {
		"Rust": {
			Symptoms:   []string{"Orange/yellow pustules", "Leaf discoloration", "Reduced grain size"},
			Causes:     "Fungal infection",
			Treatment:  "Fungicide application",
			Prevention: "Resistant varieties, crop rotation",
		},
	},
}

var genericDiseaseInfo = DiseaseInfo{
	Symptoms:   []string{"Symptoms vary"},
	Causes:     "Various factors",
	Treatment:  "Consult agricultural expert",
	Prevention: "Good agricultural practices",
}

// Lookup returns the knowledge-base entry for a disease, or the generic
// fallback for diseases without one.
func Lookup(cropType, diseaseName string) DiseaseInfo {
	if perCrop, ok := diseaseKnowledge[CropType(normalizeCrop(cropType))]; ok {
		if info, ok := perCrop[diseaseName]; ok {
			return info
		}
	}
	return genericDiseaseInfo
}

// TreatmentRecommendations builds the action list the farmer receives with
// a detection result.
func TreatmentRecommendations(disease string, isDiseased bool) []string {
	if !isDiseased || disease == HealthyLabel {
		return []string{
			"Your crop appears healthy!",
			"Continue regular monitoring",
			"Maintain good agricultural practices",
			"Ensure proper irrigation and nutrition",
		}
	}

	recommendations := []string{
		fmt.Sprintf("Disease detected: %s", disease),
		"Immediate action required",
		"Consult with local agricultural extension officer",
		"Consider appropriate fungicide/bactericide application",
	}

	lower := strings.ToLower(disease)
	switch {
	case strings.Contains(lower, "blight"):
		recommendations = append(recommendations,
			"Improve air circulation and reduce humidity",
			"Remove and destroy infected plant parts")
	case strings.Contains(lower, "rust"):
		recommendations = append(recommendations,
			"Apply sulfur-based fungicides",
			"Use resistant varieties for future planting")
	case strings.Contains(lower, "spot"):
		recommendations = append(recommendations,
			"Improve drainage and avoid overhead irrigation",
			"Apply copper-based fungicides")
	}

	return recommendations
}
