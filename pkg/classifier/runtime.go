package classifier

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Runtime produces a probability per class for an image. Implementations
// must return exactly `classes` probabilities.
type Runtime interface {
	Predict(ctx context.Context, image []byte, classes int) ([]float64, error)
}

// RemoteRuntime posts the image to an external inference service.
type RemoteRuntime struct {
	client *resty.Client
	url    string
}

func NewRemoteRuntime(url string) *RemoteRuntime {
	return &RemoteRuntime{
		client: resty.New(),
		url:    url,
	}
}

type remotePrediction struct {
	Probabilities []float64 `json:"probabilities"`
}

func (r *RemoteRuntime) Predict(ctx context.Context, image []byte, classes int) ([]float64, error) {
	var result remotePrediction

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(image).
		SetResult(&result).
		Post(r.url + "/predict")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("inference service returned status %d", resp.StatusCode())
	}
	if len(result.Probabilities) != classes {
		return nil, fmt.Errorf("inference service returned %d probabilities, want %d", len(result.Probabilities), classes)
	}

	return result.Probabilities, nil
}

// StubRuntime draws a biased random distribution when no model is
// configured: 60% of draws land on class 0 (Healthy) with confidence in
// [0.7,0.95], otherwise a random disease class with confidence in [0.6,0.9].
type StubRuntime struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewStubRuntime(seed int64) *StubRuntime {
	return &StubRuntime{rnd: rand.New(rand.NewSource(seed))}
}

func (s *StubRuntime) Predict(_ context.Context, _ []byte, classes int) ([]float64, error) {
	if classes < 2 {
		return nil, fmt.Errorf("stub runtime needs at least 2 classes, got %d", classes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var top int
	var confidence float64
	if s.rnd.Float64() < 0.6 {
		top = 0
		confidence = 0.7 + s.rnd.Float64()*0.25
	} else {
		top = 1 + s.rnd.Intn(classes-1)
		confidence = 0.6 + s.rnd.Float64()*0.3
	}

	probs := make([]float64, classes)
	rest := (1 - confidence) / float64(classes-1)
	for i := range probs {
		probs[i] = rest
	}
	probs[top] = confidence

	return probs, nil
}
