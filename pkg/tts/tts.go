// Package tts synthesizes advisory text into voice clips. Synthesis runs on
// a background goroutine so the request handler is never the one blocked on
// the engine, but callers still wait for the result before responding.
package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ChandravardhanKothi/agro-advisory-service/pkg/common"
)

const maxTextLength = 1000

// languageCodes maps the API language parameter to the engine voice code.
var languageCodes = map[string]string{
	"en": "en", // English
	"hi": "hi", // Hindi
	"te": "te", // Telugu
	"ta": "ta", // Tamil
	"bn": "bn", // Bengali
	"gu": "gu", // Gujarati
	"kn": "kn", // Kannada
	"ml": "ml", // Malayalam
	"mr": "mr", // Marathi
	"pa": "pa", // Punjabi
	"or": "or", // Odia
}

// Engine renders cleaned text into an audio file at outPath.
type Engine interface {
	Render(ctx context.Context, text, langCode, outPath string) error
}

// Synthesizer is what the notification service depends on.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string, userID uint) (string, error)
}

type Service struct {
	OutputDir string
	Engine    Engine
	Fallback  Engine // optional local engine tried after the primary fails
}

func NewService(outputDir string, engine Engine, fallback Engine) (*Service, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create voice output dir: %w", err)
	}
	return &Service{OutputDir: outputDir, Engine: engine, Fallback: fallback}, nil
}

// Synthesize renders text to an mp3 under OutputDir and returns its path.
// Unknown languages fall back to English.
func (s *Service) Synthesize(ctx context.Context, text, language string, userID uint) (string, error) {
	langCode, ok := languageCodes[language]
	if !ok {
		langCode = "en"
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", common.ValidationError("no text to synthesize")
	}

	who := "anon"
	if userID != 0 {
		who = fmt.Sprintf("%d", userID)
	}
	filename := fmt.Sprintf("voice_%s_%s_%s.mp3",
		who, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	outPath := filepath.Join(s.OutputDir, filename)

	done := make(chan error, 1)
	go func() {
		err := s.Engine.Render(ctx, cleaned, langCode, outPath)
		if err != nil && s.Fallback != nil {
			err = s.Fallback.Render(ctx, cleaned, langCode, outPath)
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", common.UnavailableError("voice synthesis failed", err)
		}
	case <-ctx.Done():
		return "", common.UnavailableError("voice synthesis cancelled", ctx.Err())
	}

	if _, err := os.Stat(outPath); err != nil {
		return "", common.InternalError("voice file missing after synthesis", err)
	}

	return outPath, nil
}

// CleanText normalizes whitespace, strips markup characters the engines
// choke on and caps length at 1000 runes.
func CleanText(text string) string {
	cleaned := strings.NewReplacer("*", "", "#", "", "_", "").Replace(text)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if runes := []rune(cleaned); len(runes) > maxTextLength {
		cleaned = string(runes[:maxTextLength]) + "..."
	}
	return cleaned
}

// AvailableLanguages lists supported language parameters.
func AvailableLanguages() []string {
	langs := make([]string, 0, len(languageCodes))
	for lang := range languageCodes {
		langs = append(langs, lang)
	}
	return langs
}
