package factory

import (
	"fmt"

	"ai-resume-be/pkg/llm"
	"ai-resume-be/pkg/llm/ollama"
	"ai-resume-be/pkg/llm/openai"
)

// Settings carries the provider-specific knobs from config.
type Settings struct {
	Provider      string
	Model         string
	OpenAIKey     string
	OllamaBaseURL string
	Temperature   float64
	MaxTokens     int
}

func NewLLMProvider(s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case "openai":
		if s.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(s.OpenAIKey, s.Model, s.Temperature, s.MaxTokens), nil
	case "ollama":
		baseURL := s.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, s.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
