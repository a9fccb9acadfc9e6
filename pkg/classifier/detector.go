package classifier

import (
	"context"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

// Result carries every field a caller needs, stub or real runtime alike.
type Result struct {
	Disease        string             `json:"disease"`
	Confidence     float64            `json:"confidence"`
	IsDiseased     bool               `json:"is_diseased"`
	CropType       string             `json:"crop_type"`
	ImageQuality   string             `json:"image_quality"`
	AllPredictions map[string]float64 `json:"all_predictions"`
}

type Detector struct {
	Runtime             Runtime
	ConfidenceThreshold float64
}

func NewDetector(runtime Runtime, confidenceThreshold float64) *Detector {
	return &Detector{
		Runtime:             runtime,
		ConfidenceThreshold: confidenceThreshold,
	}
}

// Detect classifies a validated image. The caller is responsible for
// running ValidateImage first; meta is reused here for the quality tag.
func (d *Detector) Detect(ctx context.Context, image []byte, cropType string, meta *ImageMeta) (*Result, error) {
	classes := ClassesFor(cropType)

	probs, err := d.Runtime.Predict(ctx, image, len(classes))
	if err != nil {
		return nil, common.UnavailableError("disease detection failed", err)
	}

	top := 0
	for i := range probs {
		if probs[i] > probs[top] {
			top = i
		}
	}

	disease := classes[top]
	confidence := probs[top]

	all := make(map[string]float64, len(classes))
	for i, label := range classes {
		all[label] = probs[i]
	}

	return &Result{
		Disease:        disease,
		Confidence:     confidence,
		IsDiseased:     disease != HealthyLabel && confidence >= d.ConfidenceThreshold,
		CropType:       normalizeCrop(cropType),
		ImageQuality:   meta.Quality(),
		AllPredictions: all,
	}, nil
}
