package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-resty/resty/v2"
)

const DefaultCloudBaseURL = "https://translate.google.com/translate_tts"

// CloudEngine fetches synthesized audio from a hosted TTS endpoint and
// writes it to outPath.
type CloudEngine struct {
	client  *resty.Client
	baseURL string
}

func NewCloudEngine(baseURL string) *CloudEngine {
	if baseURL == "" {
		baseURL = DefaultCloudBaseURL
	}
	return &CloudEngine{
		client:  resty.New(),
		baseURL: baseURL,
	}
}

func (e *CloudEngine) Render(ctx context.Context, text, langCode, outPath string) error {
	resp, err := e.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":     "UTF-8",
			"client": "tw-ob",
			"tl":     langCode,
			"q":      text,
		}).
		Get(e.baseURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("tts endpoint returned status %d", resp.StatusCode())
	}

	return os.WriteFile(outPath, resp.Body(), 0o644)
}

// CommandEngine shells out to a local synthesizer, e.g. "espeak-ng -v {lang}
// -w {out} {text}". Placeholders {lang}, {out} and {text} are substituted
// into the configured command line.
type CommandEngine struct {
	CommandLine string
}

func NewCommandEngine(commandLine string) *CommandEngine {
	if commandLine == "" {
		commandLine = "espeak-ng -v {lang} -w {out} {text}"
	}
	return &CommandEngine{CommandLine: commandLine}
}

func (e *CommandEngine) Render(ctx context.Context, text, langCode, outPath string) error {
	parts := strings.Fields(e.CommandLine)
	if len(parts) == 0 {
		return fmt.Errorf("empty tts command")
	}

	args := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		part = strings.ReplaceAll(part, "{lang}", langCode)
		part = strings.ReplaceAll(part, "{out}", outPath)
		part = strings.ReplaceAll(part, "{text}", text)
		args = append(args, part)
	}

	cmd := exec.CommandContext(ctx, parts[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tts command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
