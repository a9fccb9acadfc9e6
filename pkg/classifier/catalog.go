// Package classifier wraps an external image-classification runtime behind a
// fixed crop/disease catalog, with a random stub when no runtime is
// configured.
package classifier

import "strings"

// HealthyLabel is always class 0 for every crop.
const HealthyLabel = "Healthy"

type CropType string

const (
	CropRice   CropType = "rice"
	CropWheat  CropType = "wheat"
	CropMaize  CropType = "maize"
	CropTomato CropType = "tomato"
	CropPotato CropType = "potato"
)

// diseaseClasses maps each crop to its ordered label list. Index in the
// slice is the model output class index.
var diseaseClasses = map[CropType][]string{
	CropRice:   {HealthyLabel, "Brown Spot", "Bacterial Leaf Blight", "Leaf Smut", "Rice Blast"},
	CropWheat:  {HealthyLabel, "Rust", "Powdery Mildew", "Septoria", "Fusarium Head Blight"},
	CropMaize:  {HealthyLabel, "Northern Leaf Blight", "Common Rust", "Gray Leaf Spot", "Bacterial Wilt"},
	CropTomato: {HealthyLabel, "Early Blight", "Late Blight", "Bacterial Spot", "Mosaic Virus"},
	CropPotato: {HealthyLabel, "Late Blight", "Early Blight", "Blackleg", "Viral Disease"},
}

var supportedCrops = []CropType{CropRice, CropWheat, CropMaize, CropTomato, CropPotato}

// SupportedCrops returns the crop catalog in a stable order.
func SupportedCrops() []string {
	crops := make([]string, len(supportedCrops))
	for i, c := range supportedCrops {
		crops[i] = string(c)
	}
	return crops
}

// ClassesFor returns the ordered label list for a crop. Unknown crops fall
// back to the rice catalog.
func ClassesFor(cropType string) []string {
	if classes, ok := diseaseClasses[CropType(normalizeCrop(cropType))]; ok {
		return classes
	}
	return diseaseClasses[CropRice]
}

// Catalog returns the full crop -> label list mapping.
func Catalog() map[string][]string {
	catalog := make(map[string][]string, len(diseaseClasses))
	for crop, classes := range diseaseClasses {
		catalog[string(crop)] = classes
	}
	return catalog
}

func normalizeCrop(cropType string) string {
	return strings.ToLower(strings.TrimSpace(cropType))
}
